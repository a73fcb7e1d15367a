// Package ansi holds the escape codes shared by the terminal
// renderers, plus helpers for measuring already-styled text.
package ansi

import (
	"strings"
	"unicode/utf8"
)

// SGR style and color codes used by the schedule views.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Strip removes escape sequences, keeping only the characters a
// terminal would draw. A sequence runs from ESC to the first ASCII
// letter, which covers every code in this package.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\033') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, c := range s {
		switch {
		case c == '\033':
			inEscape = true
		case inEscape:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// VisibleLen reports how many columns s occupies once escape
// sequences are dropped. Column math over styled text must use this
// instead of len.
func VisibleLen(s string) int {
	return utf8.RuneCountInString(Strip(s))
}
