package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders a piece of output with a color, or with a plain text
// decoration when color is disabled.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func noColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Code is a runnable command. `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is a file or directory path.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag is a CLI flag like --shift.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Key is key material such as a shift, keyword or exponent.
	// 'single quotes' without color.
	Key = Formatter{color.New(color.FgCyan, color.Bold), "'", "'"}

	// Output is a cipher result. Left undecorated so it can be piped.
	Output = Formatter{color.New(color.FgMagenta), "", ""}

	// Muted is secondary text. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// EnsureNewline appends a newline if s does not already end with one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Field is one labelled line in a Fields block.
type Field struct {
	Label string
	Value string
}

// Fields renders labelled values with the labels padded to a common width.
func Fields(fields ...Field) string {
	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "  %-*s  %s\n", width+1, f.Label+":", f.Value)
	}
	return b.String()
}

// Grid renders the rows of a letter square separated by single spaces,
// indented to sit under a heading.
func Grid(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("  ")
		for i, r := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
