package common

import "strings"

// YesNo formats a boolean evaluation result.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Pad right-pads s to width runes.
func Pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
