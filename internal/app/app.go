package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/keymap"
	"github.com/llehouerou/shelf/internal/notify"
	"github.com/llehouerou/shelf/internal/ui/categorylist"
	"github.com/llehouerou/shelf/internal/ui/filterbar"
	"github.com/llehouerou/shelf/internal/ui/headerbar"
	"github.com/llehouerou/shelf/internal/ui/producttable"
	"github.com/llehouerou/shelf/internal/ui/styles"
	"github.com/llehouerou/shelf/internal/view"
)

// FocusTarget is the component receiving keys when no popup is open.
type FocusTarget int

const (
	FocusList FocusTarget = iota
	FocusFilter
)

// Options wires the model to its collaborators.
type Options struct {
	Fetcher              catalog.Fetcher
	Logger               *zap.Logger      // nil = no logging
	Notifier             notify.Notifier  // nil = no desktop notifications
	NotificationDuration time.Duration    // 0 = DefaultNotificationDuration
	Now                  func() time.Time // nil = time.Now
}

// Model is the root application model.
type Model struct {
	state    view.State
	viewMode headerbar.View
	focus    FocusTarget

	table      producttable.Model
	categories categorylist.Model
	filter     filterbar.Model
	spinner    spinner.Model
	popups     PopupManager
	keys       *keymap.Resolver

	fetcher   catalog.Fetcher
	ctx       context.Context
	cancel    context.CancelFunc
	fetchedAt time.Time

	mirror               *notify.Mirror
	notificationDuration time.Duration
	log                  *zap.Logger
	now                  func() time.Time

	width  int
	height int
}

// New creates the model with the first fetch already marked as started;
// Init issues it.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		state:                view.NewState(),
		viewMode:             headerbar.ViewProducts,
		table:                producttable.New(),
		categories:           categorylist.New(),
		filter:               filterbar.New(),
		spinner:              spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.T().S().Key)),
		keys:                 keymap.Default(),
		fetcher:              opts.Fetcher,
		ctx:                  ctx,
		cancel:               cancel,
		notificationDuration: opts.NotificationDuration,
		log:                  opts.Logger,
		now:                  opts.Now,
	}
	if m.notificationDuration <= 0 {
		m.notificationDuration = DefaultNotificationDuration
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Notifier != nil {
		m.mirror = notify.NewMirror(opts.Notifier, m.notificationDuration)
	}
	m.table.SetFocused(true)
	m.categories.SetFocused(true)

	m.state = view.Reduce(m.state, view.FetchStarted{})
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// Close abandons any fetch in flight. Safe to call more than once.
func (m Model) Close() {
	m.cancel()
}

// State returns the current product list state.
func (m Model) State() view.State {
	return m.state
}

func (m Model) fetch() tea.Cmd {
	m.log.Debug("fetch started")
	return fetchCmd(m.ctx, m.fetcher, m.now)
}
