// Package shell runs panel commands through the system shell and
// captures their output for display.
package shell

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MaxOutputLines caps how much command output the panel keeps.
const MaxOutputLines = 256

// Runner executes shell commands synchronously.
type Runner struct {
	shell string
}

// NewRunner creates a runner that uses /bin/sh.
func NewRunner() *Runner {
	return &Runner{shell: "/bin/sh"}
}

// Run executes cmd through the shell and returns its combined output
// split into lines, capped at MaxOutputLines. stderr is interleaved
// with stdout the way a terminal would show it. A failing command is
// not an error; its output (and the shell's diagnostics) is the
// result. When the shell itself cannot be started the error message
// becomes the single output line, so the panel always has something
// to show.
func (r *Runner) Run(ctx context.Context, cmd string) []string {
	out, err := exec.CommandContext(ctx, r.shell, "-c", cmd).CombinedOutput()
	if err != nil && len(out) == 0 {
		return []string{fmt.Sprintf("Error running command: %v", err)}
	}
	return splitLines(string(out))
}

func splitLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	if len(lines) > MaxOutputLines {
		lines = lines[:MaxOutputLines]
	}
	return lines
}
