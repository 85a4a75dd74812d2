package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/catalog"
)

// fetchCmd loads the catalogue. The request is abandoned when ctx is
// cancelled, which happens on quit.
func fetchCmd(ctx context.Context, f catalog.Fetcher, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		start := now()
		items, err := f.Fetch(ctx)
		return FetchResultMsg{Items: items, Err: err, Elapsed: now().Sub(start)}
	}
}
