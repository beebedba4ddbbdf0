// Package utils provides small helpers shared by the cmd layer.
//
// # Input
//
//   - ReadText: joins positional arguments, or reads piped stdin when none
//     are given
//   - IsTerminal: reports whether a reader is an interactive terminal
//
// # Formatting
//
//   - FormatList: renders items as an indented bullet list
//   - ParseUint: parses a decimal number argument with a named error
package utils
