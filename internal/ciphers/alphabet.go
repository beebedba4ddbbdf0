package ciphers

import (
	"strings"
	"unicode"
)

const alphabetSize = 26

// letterIndex maps an ASCII letter to 0..25 and reports its case.
func letterIndex(r rune) (idx int, upper bool, ok bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true, true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), false, true
	}
	return 0, false, false
}

func letterAt(idx int, upper bool) rune {
	if upper {
		return rune('A' + idx)
	}
	return rune('a' + idx)
}

func mod26(x int) int {
	x %= alphabetSize
	if x < 0 {
		x += alphabetSize
	}
	return x
}

// substitute applies fn to every letter of text, preserving case.
// fn receives the letter index and the count of letters seen before it.
func substitute(text string, fn func(idx, pos int) int) string {
	var b strings.Builder
	b.Grow(len(text))

	pos := 0
	for _, r := range text {
		idx, upper, ok := letterIndex(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(letterAt(fn(idx, pos), upper))
		pos++
	}
	return b.String()
}

// keywordShifts returns the letters of keyword as shifts 0..25.
func keywordShifts(keyword string) []int {
	var shifts []int
	for _, r := range keyword {
		if idx, _, ok := letterIndex(r); ok {
			shifts = append(shifts, idx)
		}
	}
	return shifts
}

// lettersOnly upper-cases text and drops every rune that is not an ASCII letter.
func lettersOnly(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if _, _, ok := letterIndex(r); ok {
			out = append(out, byte(unicode.ToUpper(r)))
		}
	}
	return out
}
