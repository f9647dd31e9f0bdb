package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const colorsDescription = "Colors as hex codes (#rgb, #rrggbb, with or without '#') or Oklab triplets like \"[0.5, 0.1, -0.05]\""

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("color_convert",
			mcp.WithDescription("Convert colors to hex, sRGB and Oklab. Returns one result per input, in order."),
			mcp.WithArray("colors",
				mcp.Required(),
				mcp.Description(colorsDescription),
			),
		),
		mcp.NewTool("color_average",
			mcp.WithDescription("Average colors in the Oklab perceptual color space and return the mean color."),
			mcp.WithArray("colors",
				mcp.Required(),
				mcp.Description(colorsDescription+". At least one color is required."),
			),
		),
		mcp.NewTool("color_quantize",
			mcp.WithDescription("Interpolate in Oklab between each consecutive pair of colors. Every pair yields 'steps' colors including both endpoints, so shared endpoints appear twice."),
			mcp.WithArray("colors",
				mcp.Required(),
				mcp.Description(colorsDescription+". At least two colors are required."),
			),
			mcp.WithNumber("steps",
				mcp.Description("Steps per pair, including both endpoints. Minimum 2. Defaults to the configured step count (8 unless changed)."),
			),
		),
	}
}

// tools pairs every tool definition with its handler.
func (s *Server) tools() []mcpserver.ServerTool {
	handlers := map[string]mcpserver.ToolHandlerFunc{
		"color_convert":  s.handleColorConvert,
		"color_average":  s.handleColorAverage,
		"color_quantize": s.handleColorQuantize,
	}

	defs := GetToolDefinitions()
	out := make([]mcpserver.ServerTool, 0, len(defs))
	for _, def := range defs {
		out = append(out, mcpserver.ServerTool{Tool: def, Handler: handlers[def.Name]})
	}
	return out
}
