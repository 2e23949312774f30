// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui renders pipeline results and progress for the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// Separator frames each text block.
var Separator = strings.Repeat("=", 50)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgYellow)
)

// DisableColor turns off ANSI colors for all output.
func DisableColor() {
	color.NoColor = true
}

// RenderResult writes res to w in the given format.
func RenderResult(w io.Writer, res *types.Result, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		return renderText(w, res)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml, or json)", format)
	}
}

func renderText(w io.Writer, res *types.Result) error {
	blocks := []struct{ title, body string }{
		{"Analysis", res.Analysis},
		{"LinkedIn Post", res.Post},
	}
	for i, b := range blocks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := headingColor.Fprintf(w, "%s:\n", b.title); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", Separator, b.body, Separator); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes the failure message and a hint for the user.
func RenderError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)
	hintColor.Fprintln(w, "Please make sure the URL is accessible and points to a valid PDF file.")
}
