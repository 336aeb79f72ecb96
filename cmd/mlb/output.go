// ABOUTME: Shared output helpers for CLI commands.
// ABOUTME: Pretty-prints JSON bodies with a faint context line.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

// renderJSON formats a decoded body for terminal display.
func renderJSON(body map[string]any) (string, error) {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format result: %w", err)
	}
	return string(data), nil
}

// printResult writes a faint context line followed by the body.
func printResult(context string, body map[string]any) error {
	out, err := renderJSON(body)
	if err != nil {
		return err
	}
	if context != "" {
		color.New(color.Faint).Println(context)
	}
	fmt.Println(out)
	return nil
}
