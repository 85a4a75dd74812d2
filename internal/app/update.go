package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/notify"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/categorylist"
	"github.com/llehouerou/shelf/internal/ui/details"
	"github.com/llehouerou/shelf/internal/ui/filterbar"
	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/helpbindings"
	"github.com/llehouerou/shelf/internal/ui/producttable"
	"github.com/llehouerou/shelf/internal/view"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.table.SetPlaceholder(m.placeholder())
		return m, cmd

	case FetchResultMsg:
		return m.handleFetchResult(msg)

	case NotificationClearMsg:
		return m.dispatch(view.NotificationExpired{ID: msg.ID})

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// dispatch runs ev through the reducer, refreshes the components and starts
// the expiry timer of a notification the transition raised.
func (m Model) dispatch(ev view.Event) (Model, tea.Cmd) {
	prev := m.state
	m.state = view.Reduce(prev, ev)
	m.sync()

	n, ok := view.NewNotification(prev, m.state)
	if !ok {
		return m, nil
	}
	m.log.Info("notification",
		zap.Int64("id", n.ID),
		zap.String("severity", string(n.Severity)),
		zap.String("message", n.Message))
	m.mirrorToDesktop(n)
	return m, NotificationClearCmd(n.ID, m.notificationDuration)
}

func (m Model) mirrorToDesktop(n view.Notification) {
	if m.mirror == nil {
		return
	}
	urgency := notify.UrgencyLow
	if n.Severity == view.SeverityError {
		urgency = notify.UrgencyCritical
	}
	if err := m.mirror.Send("shelf", n.Message, urgency); err != nil {
		m.log.Warn(errmsg.Format(errmsg.OpDesktopSend, err))
	}
}

func (m Model) handleFetchResult(msg FetchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error("fetch failed", zap.Error(msg.Err), zap.Duration("elapsed", msg.Elapsed))
		return m.dispatch(view.FetchFailed{Err: msg.Err})
	}
	m.log.Info("fetch finished", zap.Int("items", len(msg.Items)), zap.Duration("elapsed", msg.Elapsed))
	m.fetchedAt = m.now()
	return m.dispatch(view.FetchSucceeded{Items: msg.Items})
}

// reload starts a new fetch unless one is in flight.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.state.Loading() {
		return m, nil
	}
	m, cmd := m.dispatch(view.FetchStarted{})
	return m, tea.Batch(cmd, m.fetch(), m.spinner.Tick)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	if m.mirror != nil {
		_ = m.mirror.Dismiss()
	}
	return m, tea.Quit
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("action", zap.String("source", msg.Source), zap.String("type", msg.Action.ActionType()))

	switch a := msg.Action.(type) {
	case filterbar.Done:
		// Focus already moved in updateFilter; a late Done must not steal
		// it back from a filter reopened since.
		if !m.filter.IsFocused() {
			m.setFocus(FocusList)
		}
		return m, nil

	case producttable.ShowDetails:
		return m, m.popups.ShowDetails(a.Item)

	case categorylist.Choose:
		m.filter.SetValue("")
		m.viewMode = headerbar.ViewProducts
		m.setFocus(FocusList)
		return m.dispatch(view.CategoryChosen{Name: a.Name})

	case helpbindings.Close, details.Close:
		m.popups.Close()
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popups.Active() != PopupNone || m.viewMode != headerbar.ViewProducts {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button { //nolint:exhaustive // only left click and the wheel are used
	case tea.MouseButtonLeft:
		if msg.Y != listTop+producttable.HeaderRow {
			return m, nil
		}
		if key, ok := m.table.HeaderAt(msg.X); ok {
			return m.dispatch(view.HeaderClicked{Key: key})
		}
	case tea.MouseButtonWheelDown:
		m.table, _ = m.table.Update(tea.KeyMsg{Type: tea.KeyDown})
	case tea.MouseButtonWheelUp:
		m.table, _ = m.table.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	return m, nil
}
