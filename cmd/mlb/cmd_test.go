// ABOUTME: Tests for CLI helpers and command wiring.
// ABOUTME: Covers renderJSON, startup precondition, and registered commands.
package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/mlb/internal/config"
)

func TestRenderJSON(t *testing.T) {
	out, err := renderJSON(map[string]any{"league": map[string]any{"alias": "AL"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"alias": "AL"`) {
		t.Errorf("output %q missing expected field", out)
	}
}

func TestPreRunRequiresAPIKey(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "")

	err := rootCmd.PersistentPreRunE(scheduleCmd, nil)
	if err == nil {
		t.Fatal("expected an error when the credential is unset")
	}
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestPreRunBuildsClient(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "test-key")

	if err := rootCmd.PersistentPreRunE(scheduleCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api == nil {
		t.Error("expected the API client to be constructed")
	}
	if logger == nil {
		t.Error("expected the logger to be constructed")
	}
}

func TestPreRunSkipsVersion(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "")

	if err := rootCmd.PersistentPreRunE(versionCmd, nil); err != nil {
		t.Errorf("version should not require a credential, got %v", err)
	}
}

func TestRegisteredCommands(t *testing.T) {
	want := []string{
		"schedule", "standings", "game", "team", "player",
		"leaders", "injuries", "transactions", "draft", "hierarchy",
		"mcp", "version",
	}

	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestGameSubcommands(t *testing.T) {
	want := []string{"summary", "boxscore", "pbp", "pitches"}

	have := make(map[string]bool)
	for _, c := range gameCmd.Commands() {
		have[c.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("game subcommand %q not registered", name)
		}
	}
}
