// Package prompt wraps the external files-to-prompt CLI tool, which
// concatenates a set of files into a single prompt-formatted document.
package prompt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const defaultBinary = "files-to-prompt"

// Options controls the output shape of a single run.
type Options struct {
	OutputFile  string // Where the tool writes its result
	Markdown    bool   // Fenced code blocks instead of the default format
	LineNumbers bool   // Prefix each line with its number
}

// Runner invokes the files-to-prompt binary as a subprocess.
type Runner struct {
	binary string
}

// NewRunner creates a Runner using the default binary name, resolved via PATH.
func NewRunner() *Runner {
	return &Runner{binary: defaultBinary}
}

// NewRunnerWithBinary creates a Runner for a specific binary path.
func NewRunnerWithBinary(binary string) *Runner {
	if binary == "" {
		binary = defaultBinary
	}
	return &Runner{binary: binary}
}

// Run concatenates the given files into one document and returns its content.
// An empty file list short-circuits to an empty result without spawning the
// tool. The output file, when set, is left on disk for the caller.
func (r *Runner) Run(ctx context.Context, fileNames []string, opts Options) (string, error) {
	if len(fileNames) == 0 {
		return "", nil
	}

	output := opts.OutputFile
	if output == "" {
		tmp, err := os.CreateTemp("", "files-to-prompt-*.txt")
		if err != nil {
			return "", fmt.Errorf("failed to create output file: %w", err)
		}
		output = tmp.Name()
		_ = tmp.Close()
		defer os.Remove(output)
	} else if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := buildArgs(fileNames, output, opts)
	logger.Debugf("Running %s %s", r.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Env = os.Environ()
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s failed: %w: %s", r.binary, err, strings.TrimSpace(string(out)))
	}

	content, err := os.ReadFile(output)
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}
	return string(content), nil
}

// buildArgs assembles the CLI arguments for one invocation.
func buildArgs(fileNames []string, output string, opts Options) []string {
	args := make([]string, 0, len(fileNames)+4)
	args = append(args, fileNames...)
	args = append(args, "-o", output)
	if opts.Markdown {
		args = append(args, "--markdown")
	}
	if opts.LineNumbers {
		args = append(args, "--line-numbers")
	}
	return args
}
