package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/686f6c6/goldbach/internal/goldbach"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	if rootCmd.Use != "goldbach" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "goldbach")
	}

	expectedCmds := []string{"single", "range", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestSingleCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "single", "10")
	if err != nil {
		t.Fatalf("single 10 failed: %v", err)
	}

	if !strings.Contains(output, "3 + 7 = 10") {
		t.Errorf("output missing pair 3+7:\n%s", output)
	}
	if !strings.Contains(output, "5 + 5 = 10") {
		t.Errorf("output missing pair 5+5:\n%s", output)
	}
}

func TestSingleCommandJSON(t *testing.T) {
	singleJSON = true
	defer func() { singleJSON = false }()

	output, err := executeCommand(rootCmd, "single", "100")
	if err != nil {
		t.Fatalf("single 100 failed: %v", err)
	}

	var entry goldbach.Entry
	if err := json.Unmarshal([]byte(output), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}

	if entry.N != 100 {
		t.Errorf("entry.N = %d, want 100", entry.N)
	}
	if entry.Count() != 6 {
		t.Errorf("100 has %d pairs, want 6", entry.Count())
	}
	if entry.Pairs[0] != (goldbach.Pair{P: 3, Q: 97}) {
		t.Errorf("first pair = %+v, want (3, 97)", entry.Pairs[0])
	}
}

func TestSingleCommandRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"odd number", "7"},
		{"too small", "2"},
		{"not a number", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(rootCmd, "single", tt.arg); err == nil {
				t.Errorf("single %s should fail", tt.arg)
			}
		})
	}
}

func TestRangeCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "range", "4", "20")
	if err != nil {
		t.Fatalf("range 4 20 failed: %v", err)
	}

	if !strings.Contains(output, "9 even numbers") {
		t.Errorf("output missing summary line:\n%s", output)
	}
}

func TestRangeCommandJSON(t *testing.T) {
	rangeJSON = true
	defer func() { rangeJSON = false }()

	output, err := executeCommand(rootCmd, "range", "4", "20")
	if err != nil {
		t.Fatalf("range 4 20 failed: %v", err)
	}

	var out rangeOutput
	if err := json.Unmarshal([]byte(output), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}

	if len(out.Entries) != 9 {
		t.Errorf("got %d entries, want 9", len(out.Entries))
	}
	if len(out.Histogram) != 9 {
		t.Errorf("got %d histogram bins, want 9", len(out.Histogram))
	}
	// Under the default "both" policy every pair yields two points.
	totalPairs := 0
	for _, entry := range out.Entries {
		totalPairs += entry.Count()
	}
	if len(out.Scatter) != 2*totalPairs {
		t.Errorf("got %d scatter points, want %d", len(out.Scatter), 2*totalPairs)
	}
}

func TestRangeCommandDoesNotRoundBounds(t *testing.T) {
	if _, err := executeCommand(rootCmd, "range", "5", "20"); err == nil {
		t.Error("range with an odd minimum should fail")
	}
	if _, err := executeCommand(rootCmd, "range", "20", "10"); err == nil {
		t.Error("range with inverted bounds should fail")
	}
}

func TestConfigShowCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{"analysis:", "tui:", "logging:", "scatter_policy"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show output missing %q:\n%s", want, output)
		}
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	if _, err := executeCommand(rootCmd, "config", "set", "no.such.key", "1"); err == nil {
		t.Error("config set with unknown key should fail")
	}
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer workers", "analysis.workers", "many"},
		{"negative workers", "analysis.workers", "-2"},
		{"bad scatter policy", "analysis.scatter_policy", "upper"},
		{"bad theme", "tui.theme", "solarized-unknown"},
		{"bad log level", "logging.level", "verbose"},
		{"bad bool", "logging.enabled", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(rootCmd, "config", "set", tt.key, tt.value); err == nil {
				t.Errorf("config set %s %s should fail", tt.key, tt.value)
			}
		})
	}
}
