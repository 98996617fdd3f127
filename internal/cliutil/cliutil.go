// Package cliutil holds the stdin/stdout edge helpers shared by the
// embedding commands.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ReadInput reads all of r and trims surrounding whitespace.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteJSONLine marshals v and writes it to w as a single line.
func WriteJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Fail logs the error and writes a prefixed diagnostic to stderr.
// The caller is expected to exit with a non-zero status.
func Fail(log *slog.Logger, message string, err error) {
	log.Error(message, "err", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
