// Package app is the root bubbletea model: it owns the product list state
// and routes keys, fetch results and timers to it.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/catalog"
)

// FetchResultMsg carries the outcome of one fetch.
type FetchResultMsg struct {
	Items   []catalog.Item
	Err     error
	Elapsed time.Duration
}

// NotificationClearMsg is sent when a notification's display time ran out.
type NotificationClearMsg struct {
	ID int64
}

// DefaultNotificationDuration is how long notifications are displayed.
const DefaultNotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that expires notification id after d.
func NotificationClearCmd(id int64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}
