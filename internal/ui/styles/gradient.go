package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// gray stands in for colors that are not #rrggbb (ANSI palette indexes).
var gray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient colors the app title in the header bar, fading from one theme
// color to another across its grapheme clusters so wide characters keep a
// single color.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	base := lipgloss.NewStyle().Bold(bold)

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, hex := range blend(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(hex)).Render(clusters[i]))
	}
	return b.String()
}

func graphemes(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// blend returns n hex colors from "from" to "to", interpolated in HCL.
func blend(n int, from, to lipgloss.Color) []string {
	if n < 2 {
		return []string{parse(from).Hex()}
	}
	start, end := parse(from), parse(to)
	out := make([]string, n)
	for i := range out {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped().Hex()
	}
	return out
}

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return gray
	}
	return col
}
