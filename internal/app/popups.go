package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/ui/details"
	"github.com/llehouerou/shelf/internal/ui/helpbindings"
	"github.com/llehouerou/shelf/internal/ui/popup"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupDetails
)

// PopupManager holds the one modal popup that may be open.
type PopupManager struct {
	kind   PopupType
	active popup.Popup
	title  string
	size   popup.SizeConfig

	width  int
	height int
}

// SetSize updates the screen dimensions popups are laid out in.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.resize()
}

func (p *PopupManager) resize() {
	if p.active == nil {
		return
	}
	p.active.SetSize(popup.Inner(p.width, p.height, p.size))
}

func (p *PopupManager) open(kind PopupType, title string, pp popup.Popup, size popup.SizeConfig) tea.Cmd {
	p.kind, p.title, p.active, p.size = kind, title, pp, size
	p.resize()
	return pp.Init()
}

// ShowHelp opens the key binding reference.
func (p *PopupManager) ShowHelp() tea.Cmd {
	return p.open(PopupHelp, "Help", helpbindings.New(helpbindings.AllContexts()...), popup.SizeAuto)
}

// ShowDetails opens the details of item.
func (p *PopupManager) ShowDetails(item catalog.Item) tea.Cmd {
	return p.open(PopupDetails, "Product", details.New(item), popup.SizeLarge)
}

func (p *PopupManager) Close() {
	p.kind, p.active, p.title = PopupNone, nil, ""
}

// Active returns the open popup type.
func (p *PopupManager) Active() PopupType {
	return p.kind
}

// Update forwards msg to the open popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if p.active == nil {
		return nil
	}
	var cmd tea.Cmd
	p.active, cmd = p.active.Update(msg)
	return cmd
}

// RenderOverlay draws the open popup over base.
func (p *PopupManager) RenderOverlay(base string) string {
	if p.active == nil {
		return base
	}
	box := popup.RenderBordered(p.title, p.active.View(), p.width, p.height, p.size)
	return popup.Compose(base, box, p.width)
}
