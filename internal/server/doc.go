// Package server implements the MCP (Model Context Protocol) server for the
// oklab color tools.
//
// The server exposes the same operations as the command line, so MCP clients
// can convert, average and interpolate colors without shelling out.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0, handled by mcp-go:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logs never go to stdout; see the logging package.
//
// # Available Tools
//
//   - color_convert: describe each color as hex, sRGB and Oklab
//   - color_average: mean of the colors in Oklab
//   - color_quantize: Oklab interpolation steps between consecutive colors
//
// Every tool takes a "colors" array of strings using the command-line
// grammar: "#rgb", "#rrggbb" (the '#' is optional) or "[l, a, b]".
// color_quantize also accepts "steps" (2 to 10000, default from config).
//
// # Results
//
// Successful calls return a single text content item holding indented JSON:
//
//	{
//	  "hex": "#636363",
//	  "rgb": {"r": 99, "g": 99, "b": 99},
//	  "lab": {"l": 0.5, "a": 0, "b": 0}
//	}
//
// color_quantize returns an array of {"fraction": f, "color": {...}}.
//
// # Error Handling
//
// Invalid input is reported as a tool error result (isError: true) whose text
// names the failure: invalid color format, invalid step count, insufficient
// colors or empty input. Protocol-level JSON-RPC errors are left to mcp-go.
//
// # Usage
//
//	srv := server.New(version, cfg.Steps)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
