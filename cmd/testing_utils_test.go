package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the config and data directories at a fresh
// temporary directory and resets command state.
func setupTestEnvironment(t *testing.T) {
	t.Helper()

	t.Setenv("NO_COLOR", "1")
	originalNoColor := color.NoColor
	color.NoColor = true

	dir := t.TempDir()
	originalSettings := configs.UserSettings
	configs.UserSettings = &configs.Settings{
		ConfigDir: filepath.Join(dir, "config"),
		DataDir:   filepath.Join(dir, "data"),
	}

	ResetGlobalState()

	t.Cleanup(func() {
		configs.UserSettings = originalSettings
		color.NoColor = originalNoColor
		ResetGlobalState()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	collect := func(r io.Reader) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outputChan <- buf.String()
	}
	go collect(stdoutReader)
	go collect(stderrReader)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// withStdin replaces os.Stdin with a pipe carrying input for the duration
// of fn.
func withStdin(t *testing.T, input string, fn func()) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("Failed to write stdin: %v", err)
	}
	w.Close()

	original := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = original
		r.Close()
	}()

	fn()
}

// createTestCLI builds a fresh root command holding every command group.
func createTestCLI(args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cipherkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(Commands()...)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes args against a fresh CLI and returns the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}
