package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ironsheep/oklabby/internal/oklab"
)

// maxSteps bounds the per-pair step count a client may request.
const maxSteps = 10000

// handleColorConvert describes every input color.
//
// Result text is a JSON array of {hex, rgb, lab} objects in input order.
func (s *Server) handleColorConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colors, err := colorsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(colors) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("%v: no colors given", oklab.ErrEmptyInput)), nil
	}

	results := make([]oklab.ColorResult, 0, len(colors))
	for _, c := range colors {
		results = append(results, oklab.Describe(c))
	}
	return jsonResult(results), nil
}

func (s *Server) handleColorAverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	colors, err := colorsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	avg, err := oklab.Average(colors)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(oklab.Describe(avg)), nil
}

func (s *Server) handleColorQuantize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	steps, err := s.stepsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	colors, err := colorsArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	quantized, err := oklab.QuantizeAll(colors, steps)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := make([]oklab.StepResult, 0, len(quantized))
	for _, st := range quantized {
		results = append(results, oklab.DescribeStep(st))
	}
	return jsonResult(results), nil
}

// colorsArg reads and parses the "colors" argument.
func colorsArg(req mcp.CallToolRequest) ([]oklab.Lab, error) {
	raw, ok := req.GetArguments()["colors"]
	if !ok {
		return nil, fmt.Errorf("colors parameter is required")
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("colors must be an array of strings")
	}

	texts := make([]string, 0, len(items))
	for i, item := range items {
		text, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("color %d: expected a string, got %T", i+1, item)
		}
		texts = append(texts, text)
	}
	return oklab.ParseAll(texts)
}

// stepsArg reads the optional "steps" argument. JSON numbers arrive as
// float64, so fractional values are rejected explicitly.
func (s *Server) stepsArg(req mcp.CallToolRequest) (int, error) {
	raw, ok := req.GetArguments()["steps"]
	if !ok || raw == nil {
		return s.defaultSteps, nil
	}

	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("steps must be a number, got %T", raw)
	}
	if math.IsNaN(f) || f < 2 {
		return 0, fmt.Errorf("%w: need at least 2 steps, got %v", oklab.ErrInvalidStepCount, f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: steps must be a whole number, got %v", oklab.ErrInvalidStepCount, f)
	}
	if f > maxSteps {
		return 0, fmt.Errorf("%w: at most %d steps per pair, got %v", oklab.ErrInvalidStepCount, maxSteps, f)
	}
	return int(f), nil
}

// jsonResult wraps v as pretty-printed JSON text. Values JSON cannot carry,
// such as an infinite component, become a tool error.
func jsonResult(v interface{}) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}
