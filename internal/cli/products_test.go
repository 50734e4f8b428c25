package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestProductsCmd_ListsEverything(t *testing.T) {
	app := New()
	cmd := NewProductsCmd(app)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("products command failed: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Swiggy",
		"Spotify",
		"Searching for a Restaurant",
		"Discovering New Music",
		"Entry Level PM",
		"Mid-Level PM",
		"Senior PM",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}
}

func TestProductsCmd_QuestionCounts(t *testing.T) {
	app := New()
	cmd := NewProductsCmd(app)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("products command failed: %v", err)
	}

	output := buf.String()

	// The Swiggy flow asks 4 questions per role, the Spotify flow 3.
	if got := strings.Count(output, "4 questions"); got != 3 {
		t.Errorf("Expected 3 roles with 4 questions, got %d", got)
	}
	if got := strings.Count(output, "3 questions"); got != 3 {
		t.Errorf("Expected 3 roles with 3 questions, got %d", got)
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	app := New()

	names := make(map[string]bool)
	for _, c := range app.rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"practice", "products", "version"} {
		if !names[want] {
			t.Errorf("root command should have subcommand %q", want)
		}
	}
}
