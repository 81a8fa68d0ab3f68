package justext

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses every run of Unicode whitespace into a
// single character: a newline when the run contains \n or \r, a space
// otherwise. Non-whitespace characters are copied through unchanged. The
// result is stable under repeated application.
func NormalizeWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	hasNewline := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inRun {
				inRun = true
				hasNewline = false
			}
			if r == '\n' || r == '\r' {
				hasNewline = true
			}
			continue
		}
		if inRun {
			b.WriteByte(runSeparator(hasNewline))
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(runSeparator(hasNewline))
	}
	return b.String()
}

func runSeparator(hasNewline bool) byte {
	if hasNewline {
		return '\n'
	}
	return ' '
}
