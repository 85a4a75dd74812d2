// Package render provides text helpers for fixed-width table cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize makes remote text safe for a single terminal cell: line breaks,
// tabs and non-breaking spaces become plain spaces, other control characters
// and invalid UTF-8 bytes are dropped, and runs of spaces collapse.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
			continue
		case r == '\n' || r == '\r' || r == '\t' || r == ' ' || r == '\u00a0':
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		case unicode.IsControl(r):
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

func needsSanitize(s string) bool {
	prevSpace := false
	for i := range len(s) {
		c := s[i]
		switch {
		case c < 0x20, c == 0x7f, c >= 0x80 && c <= 0x9f:
			return true
		case c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0:
			return true
		case c == ' ' && prevSpace:
			return true
		}
		prevSpace = c == ' '
	}
	return !utf8.ValidString(s)
}

// Truncate sanitizes s and shortens it to maxWidth cells, ending with an
// ellipsis when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills s with spaces up to width cells. Styled text is measured
// without its escape sequences.
func Pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft right-aligns s in width cells.
func PadLeft(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// Clip cuts already clean text to exactly width cells without an ellipsis.
func Clip(s string, width int) string {
	return Pad(runewidth.Truncate(s, max(width, 0), ""), width)
}

// TruncateAndPad returns s occupying exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Separator is a horizontal rule width cells long.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
