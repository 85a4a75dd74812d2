// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles.
type Theme struct {
	Primary   lipgloss.Color // focused panel, active sort column
	Secondary lipgloss.Color // prices

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // selected row
	BgStripe lipgloss.Color // every other row

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base         lipgloss.Style
	Muted        lipgloss.Style
	Subtle       lipgloss.Style
	Title        lipgloss.Style
	Header       lipgloss.Style // column headers
	HeaderActive lipgloss.Style // column the list is sorted by
	Price        lipgloss.Style
	Cursor       lipgloss.Style
	Stripe       lipgloss.Style
	Key          lipgloss.Style // key names in hints and help
	Success      lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	BgStripe: lipgloss.Color("#1f1f1f"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:         base,
		Muted:        lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:       lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:        base.Bold(true),
		Header:       lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true),
		HeaderActive: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Price:        lipgloss.NewStyle().Foreground(t.Secondary),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase).
			Bold(true),
		Stripe:  lipgloss.NewStyle().Background(t.BgStripe),
		Key:     lipgloss.NewStyle().Foreground(t.Primary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
