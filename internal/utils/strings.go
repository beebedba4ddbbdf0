package utils

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/ui"
)

// FormatList renders items as an indented bullet list, one per line.
func FormatList(items []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("    - ")
		b.WriteString(ui.Info.Sprint(item))
		b.WriteString("\n")
	}
	return b.String()
}

// ParseUint parses a non-negative decimal number. name identifies the value
// in the error.
func ParseUint(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a non-negative integer", kerrors.ErrInvalidInput, name, s)
	}
	return n, nil
}
