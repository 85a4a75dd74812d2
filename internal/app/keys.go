package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/view"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.popups.Active() != PopupNone {
		return m, m.popups.Update(msg)
	}

	if m.focus == FocusFilter {
		return m.updateFilter(msg)
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()

	case keymap.ActionHelp:
		return m, m.popups.ShowHelp()

	case keymap.ActionFilter:
		m.viewMode = headerbar.ViewProducts
		m.setFocus(FocusFilter)
		return m, m.filter.Focus()

	case keymap.ActionReload:
		return m.reload()

	case keymap.ActionDismiss:
		if m.state.Notification == nil {
			return m, nil
		}
		if m.mirror != nil {
			_ = m.mirror.Dismiss()
		}
		return m.dispatch(view.NotificationDismissed{ID: m.state.Notification.ID})

	case keymap.ActionSwitchView:
		if m.viewMode == headerbar.ViewProducts {
			m.viewMode = headerbar.ViewCategories
		} else {
			m.viewMode = headerbar.ViewProducts
		}
		return m, nil

	case keymap.ActionViewProducts:
		m.viewMode = headerbar.ViewProducts
		return m, nil

	case keymap.ActionViewCategories:
		m.viewMode = headerbar.ViewCategories
		return m, nil

	case keymap.ActionAllCategories:
		if m.state.Category == "" {
			return m, nil
		}
		return m.dispatch(view.CategoryChosen{})

	case keymap.ActionSortTitle:
		return m.dispatch(view.HeaderClicked{Key: view.SortTitle})

	case keymap.ActionSortPrice:
		return m.dispatch(view.HeaderClicked{Key: view.SortPrice})

	case keymap.ActionSortCategory:
		return m.dispatch(view.HeaderClicked{Key: view.SortCategory})
	}

	// Navigation and enter belong to the visible list.
	var cmd tea.Cmd
	if m.viewMode == headerbar.ViewCategories {
		m.categories, cmd = m.categories.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// updateFilter feeds the key to the filter bar and applies its effects in the
// same Update: focus returns to the list as soon as the bar lets go, and the
// list re-derives whenever the text changed.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if !m.filter.IsFocused() {
		m.setFocus(FocusList)
	}
	after := m.filter.Value()
	if after == before {
		return m, cmd
	}
	m, derived := m.dispatch(view.FilterChanged{Text: after})
	return m, tea.Batch(cmd, derived)
}
