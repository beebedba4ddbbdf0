// Package ui provides semantic text formatting for cipherkit output.
//
// Formatters color their content when the terminal supports it. When NO_COLOR
// is set, or fatih/color has decided the output is not a color terminal, they
// fall back to plain decorations instead:
//
//	ui.Code.Sprint("cipherkit cipher list")  // `cipherkit cipher list`
//	ui.Key.Sprint("LEMON")                    // 'LEMON'
//	ui.Muted.Sprint("default")                // (default)
//
// Output is never decorated so cipher results remain safe to pipe.
package ui
