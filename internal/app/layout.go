package app

import (
	"fmt"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui"
	"github.com/llehouerou/shelf/internal/ui/filterbar"
	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/toast"
	"github.com/llehouerou/shelf/internal/view"
)

// listTop is the screen row of the list panel's top border.
const listTop = headerbar.Height + filterbar.Height

func (m Model) toastHeight() int {
	if m.state.Notification == nil {
		return 0
	}
	return toast.Height
}

func (m Model) listHeight() int {
	return max(m.height-listTop-m.toastHeight()-ui.StatusLineHeight, ui.PanelOverhead+1)
}

func (m *Model) resize() {
	m.filter.SetSize(m.width, filterbar.Height)
	m.table.SetSize(m.width, m.listHeight())
	m.categories.SetSize(m.width, m.listHeight())
	m.popups.SetSize(m.width, m.height)
}

// sync pushes the state into the components after every transition.
func (m *Model) sync() {
	m.resize()
	m.table.SetItems(m.state.Derived)
	m.table.SetSort(m.state.Sort)
	m.table.SetPlaceholder(m.placeholder())
	m.categories.SetCategories(catalog.Categories(m.state.Collection))
	m.categories.SetActive(m.state.Category)
	m.filter.SetScope(m.state.Category)
}

func (m Model) placeholder() string {
	s := m.state
	switch {
	case s.Phase == view.PhaseIdle || s.Phase == view.PhaseLoading:
		return m.spinner.View() + " Loading products…"
	case s.Phase == view.PhaseFailed:
		return "Could not load products. Press r to retry."
	case len(s.Collection) == 0:
		return "The catalogue is empty."
	case len(s.Derived) == 0 && s.FilterText == "":
		return fmt.Sprintf("No products in %q. Press a to show all.", s.Category)
	case len(s.Derived) == 0:
		return fmt.Sprintf("No products match %q", s.FilterText)
	}
	return ""
}

func (m *Model) setFocus(f FocusTarget) {
	m.focus = f
	if f == FocusFilter {
		m.table.SetFocused(false)
		m.categories.SetFocused(false)
		return
	}
	m.filter.Blur()
	m.table.SetFocused(true)
	m.categories.SetFocused(true)
}
