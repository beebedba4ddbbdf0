package utils

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// ReadText returns args joined by single spaces. With no args it reads all
// of stdin, dropping one trailing newline. An interactive stdin is not read.
func ReadText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdin == nil || IsTerminal(stdin) {
		return "", fmt.Errorf("%w: no text given (hint: pass it as arguments or pipe it on stdin)", kerrors.ErrInvalidInput)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: stdin is empty", kerrors.ErrInvalidInput)
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
