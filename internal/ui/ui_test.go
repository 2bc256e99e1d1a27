package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/crazywolf132/termchroma"
	"github.com/stretchr/testify/assert"
)

func TestColorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		colorFn  func(string) string
		contains []string // Strings that should be present in the output
	}{
		{
			name:    "Green formatting",
			input:   "success",
			colorFn: Green,
			contains: []string{
				"success",
				"\x1b[",
				"m",
				termchroma.Reset,
			},
		},
		{
			name:    "Red formatting",
			input:   "error",
			colorFn: Red,
			contains: []string{
				"error",
				"\x1b[",
				"m",
				termchroma.Reset,
			},
		},
		{
			name:    "Gray formatting",
			input:   "explain",
			colorFn: Gray,
			contains: []string{
				"explain",
				"\x1b[",
				termchroma.Reset,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.colorFn(tt.input)
			for _, substr := range tt.contains {
				assert.Contains(t, result, substr)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "Pulled latest changes")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Pulled latest changes")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, "config %s not found\n", "x.yaml")

	assert.Contains(t, buf.String(), "Warning: ")
	assert.Contains(t, buf.String(), "config x.yaml not found")
}

func TestErrorLine(t *testing.T) {
	line := ErrorLine(errors.New("boom"))
	assert.Contains(t, line, "Error: ")
	assert.True(t, strings.HasSuffix(line, "boom"))
}

func TestColorHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "Usage heading",
			input:    "Usage:",
			contains: []string{sage, bold, "Usage:", reset},
		},
		{
			name:     "Multiple headings",
			input:    "Usage:\nFlags:",
			contains: []string{"Usage:", "Flags:", sage, bold, reset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ColorHeadings(tt.input)
			for _, substr := range tt.contains {
				assert.Contains(t, result, substr)
			}
		})
	}
}

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Empty string", input: "", wantErr: true},
		{name: "Whitespace", input: "   ", wantErr: true},
		{name: "Valid name", input: "feature-x", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
