package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/oklabby/internal/oklab"
)

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func colorList(colors ...string) []interface{} {
	out := make([]interface{}, len(colors))
	for i, c := range colors {
		out[i] = c
	}
	return out
}

// resultText returns the single text content of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func TestHandleColorConvert(t *testing.T) {
	s := New("test", 8)

	result, err := s.handleColorConvert(context.Background(), callRequest("color_convert", map[string]interface{}{
		"colors": colorList("#ff8040", "abc", "[0.5, 0, 0]"),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got []oklab.ColorResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "#ff8040", got[0].Hex)
	assert.Equal(t, "#aabbcc", got[1].Hex)
	assert.Equal(t, 0.5, got[2].Lab.L)
}

func TestHandleColorAverage(t *testing.T) {
	s := New("test", 8)

	result, err := s.handleColorAverage(context.Background(), callRequest("color_average", map[string]interface{}{
		"colors": colorList("#000000", "#ffffff"),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var got oklab.ColorResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.InDelta(t, 0.5, got.Lab.L, 1e-3)
	assert.Equal(t, got.RGB.R, got.RGB.G)
	assert.Equal(t, got.RGB.G, got.RGB.B)
}

func TestHandleColorQuantize(t *testing.T) {
	s := New("test", 8)

	tests := []struct {
		name      string
		args      map[string]interface{}
		wantCount int
	}{
		{"explicit steps", map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": float64(2)}, 2},
		{"default steps", map[string]interface{}{"colors": colorList("#000", "#fff")}, 8},
		{"three colors", map[string]interface{}{"colors": colorList("#000", "#888", "#fff"), "steps": float64(4)}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleColorQuantize(context.Background(), callRequest("color_quantize", tt.args))
			require.NoError(t, err)
			require.False(t, result.IsError, resultText(t, result))

			var got []oklab.StepResult
			require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
			require.Len(t, got, tt.wantCount)
			assert.Equal(t, 0.0, got[0].Fraction)
			assert.Equal(t, "#000000", got[0].Color.Hex)
			assert.Equal(t, 1.0, got[len(got)-1].Fraction)
			assert.Equal(t, "#ffffff", got[len(got)-1].Color.Hex)
		})
	}
}

// hugeTriplet has an L near the largest float64, so a sum of two overflows.
var hugeTriplet = "[17" + strings.Repeat("0", 307) + ", 0, 0]"

func TestHandlers_Errors(t *testing.T) {
	s := New("test", 8)

	tests := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    map[string]interface{}
		want    string
	}{
		{"convert missing colors", s.handleColorConvert, map[string]interface{}{}, "colors parameter is required"},
		{"convert empty", s.handleColorConvert, map[string]interface{}{"colors": colorList()}, "empty input"},
		{"convert bad color", s.handleColorConvert, map[string]interface{}{"colors": colorList("#12")}, "invalid color format"},
		{"convert not an array", s.handleColorConvert, map[string]interface{}{"colors": "#fff"}, "must be an array"},
		{"convert non-string item", s.handleColorConvert, map[string]interface{}{"colors": []interface{}{float64(3)}}, "expected a string"},
		{"average empty", s.handleColorAverage, map[string]interface{}{"colors": colorList()}, "empty input"},
		{"average bad triplet", s.handleColorAverage, map[string]interface{}{"colors": colorList("[1,2]")}, "invalid color format"},
		{"quantize one color", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#fff")}, "insufficient colors"},
		{"quantize one step", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": float64(1)}, "invalid step count"},
		{"quantize fractional steps", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": 2.5}, "whole number"},
		{"quantize too many steps", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": float64(1e9)}, "at most"},
		{"quantize negative steps", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": float64(-1e300)}, "invalid step count"},
		{"quantize zero steps", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": float64(0)}, "need at least 2 steps"},
		{"average overflows", s.handleColorAverage, map[string]interface{}{"colors": colorList(hugeTriplet, hugeTriplet)}, "failed to encode result"},
		{"quantize steps as string", s.handleColorQuantize, map[string]interface{}{"colors": colorList("#000", "#fff"), "steps": "4"}, "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(context.Background(), callRequest("", tt.args))
			assert.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}
