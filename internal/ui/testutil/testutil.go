// Package testutil drives bubbletea components in tests.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/shelf/internal/ui/action"
)

// StripANSI removes escape sequences so views can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visible width of s.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines without trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Key builds the KeyMsg for a key name as bubbletea prints it
// ("enter", "esc", "ctrl+d", "f1", ...). Anything else is typed as runes.
func Key(name string) tea.KeyMsg {
	if t, ok := keyTypes[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var keyTypes = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+u":    tea.KeyCtrlU,
	"f1":        tea.KeyF1,
	"f2":        tea.KeyF2,
	" ":         tea.KeySpace,
}

// ExecuteCmd runs cmd and returns its message, nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Messages runs cmd, expanding batches, and returns every message produced.
// Commands that block (ticks, spinners) must not be passed here.
func Messages(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Messages(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// Actions returns the actions carried by the messages cmd produces.
func Actions(cmd tea.Cmd) []action.Action {
	var out []action.Action
	for _, msg := range Messages(cmd) {
		if m, ok := msg.(action.Msg); ok {
			out = append(out, m.Action)
		}
	}
	return out
}
