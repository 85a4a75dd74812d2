package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/shelf/internal/ui/styles"
)

// Chrome is the border plus padding RenderBordered adds around content,
// per axis.
const (
	ChromeWidth  = 6
	ChromeHeight = 4
)

// SizeConfig defines how a popup is sized.
type SizeConfig struct {
	WidthPct  int // share of screen width, 0 = fit content
	HeightPct int // share of screen height, 0 = fit content
	MaxWidth  int // 0 = no limit
}

var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70} // product details
	SizeAuto  = SizeConfig{}                            // help
)

// Inner returns the content area a popup of the given size gets on screen.
func Inner(screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return max(screenW*size.WidthPct/100-ChromeWidth, 1),
			max(screenH*size.HeightPct/100-ChromeHeight, 1)
	}
	return max(screenW-4-ChromeWidth, 1), max(screenH-4-ChromeHeight, 1)
}

// RenderBordered wraps content in a rounded border, titled when title is
// set, and centers it on the screen.
func RenderBordered(title, content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)

	if title != "" {
		box = setTitle(box, title)
	}
	return Center(box, screenW, screenH)
}

// setTitle writes " title " into the top border.
func setTitle(box, title string) string {
	lines := strings.SplitN(box, "\n", 2)
	top := lines[0]
	topWidth := ansi.StringWidth(top)
	label := " " + title + " "
	if ansi.StringWidth(label)+4 > topWidth {
		return box
	}
	label = styles.T().S().Title.Render(label)
	top = ansi.Cut(top, 0, 2) + label + ansi.Cut(top, 2+ansi.StringWidth(ansi.Strip(label)), topWidth)
	if len(lines) == 1 {
		return top
	}
	return top + "\n" + lines[1]
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	width = maxLineWidth(content) + ChromeWidth
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + ChromeHeight
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center places pre-rendered content in the middle of the screen. Lines
// are left-padded; the result has no trailing blank lines.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}

	padTop := max((screenH-len(lines))/2, 0)
	padLeft := strings.Repeat(" ", max((screenW-boxWidth)/2, 0))

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(padLeft)
		b.WriteString(line)
	}
	return b.String()
}

// Compose draws overlay on top of base. Blank overlay lines and the blank
// left margin of each overlay line let the base show through. ANSI
// sequences on both sides are preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := fitWidth(ansi.Cut(under, 0, start), start)
		out := prefix + ansi.Cut(line, start, end)
		if end < width {
			out += fitWidth(ansi.Cut(under, end, width), width-end)
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}

// fitWidth pads s to exactly width cells. Cutting through a wide rune can
// leave a segment one cell short or long.
func fitWidth(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w < width:
		return s + strings.Repeat(" ", width-w)
	case w > width:
		return ansi.Truncate(s, width, "")
	}
	return s
}
