package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "Mens Casual Slim Fit", "Mens Casual Slim Fit"},
		{"newlines become spaces", "100% cotton\nslim fit", "100% cotton slim fit"},
		{"crlf collapses", "line one\r\nline two", "line one line two"},
		{"tab becomes space", "a\tb", "a b"},
		{"nbsp becomes space", "50\u00a0cm", "50 cm"},
		{"space runs collapse", "a   b", "a b"},
		{"bell dropped", "ding\adong", "dingdong"},
		{"escape dropped", "red\x1b[31m", "red[31m"},
		{"invalid utf8 dropped", "ok\xffok", "okok"},
		{"wide runes kept", "商品 一覧", "商品 一覧"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "jewelery", 10, "jewelery"},
		{"exact fit", "jewelery", 8, "jewelery"},
		{"cut with ellipsis", "electronics", 6, "elect…"},
		{"zero width", "anything", 0, ""},
		{"sanitized before cut", "a\nb\nc", 5, "a b c"},
		{"wide runes", "商品一覧", 5, "商品…"},
		{"empty", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.maxWidth, 0))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc  ", Pad("abc", 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 3), "never truncates")
	assert.Equal(t, "  $9.85", PadLeft("$9.85", 7))
}

func TestPad_Styled(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	assert.Equal(t, styled+"   ", Pad(styled, 5))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "ab  cd", Clip("ab  cdef", 6), "inner spaces kept")
	assert.Equal(t, "ab    ", Clip("ab", 6))
	assert.Empty(t, Clip("ab", 0))
}

func TestTruncateAndPad(t *testing.T) {
	for _, width := range []int{1, 4, 8, 20} {
		got := TruncateAndPad("women's clothing", width)
		assert.Equal(t, width, runewidth.StringWidth(got), "width %d", width)
	}
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
}
