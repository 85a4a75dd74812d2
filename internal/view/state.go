package view

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/errmsg"
)

// Phase is the lifecycle of the collection.
type Phase int

const (
	PhaseIdle    Phase = iota // nothing requested yet
	PhaseLoading              // fetch in flight
	PhaseReady                // collection loaded
	PhaseFailed               // last fetch failed; collection is empty
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient user-visible message.
type Notification struct {
	ID       int64
	Severity Severity
	Message  string
}

// State is the complete, immutable product list state. Slices held by a
// State are never written after the State is built; every transition
// allocates new ones.
type State struct {
	Phase        Phase
	Collection   []catalog.Item
	FilterText   string
	Category     string // exact category the view is narrowed to; "" for all
	Sort         SortConfig
	Derived      []catalog.Item
	Notification *Notification
	Err          error

	lastNotificationID int64
}

// NewState returns the initial state: nothing loaded, insertion order.
func NewState() State {
	return State{Phase: PhaseIdle}
}

// Loading reports whether a fetch is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// FetchStarted marks the beginning of a fetch.
type FetchStarted struct{}

// FetchSucceeded carries a freshly fetched collection.
type FetchSucceeded struct {
	Items []catalog.Item
}

// FetchFailed carries the error of a failed fetch.
type FetchFailed struct {
	Err error
}

// FilterChanged carries the new filter text.
type FilterChanged struct {
	Text string
}

// CategoryChosen narrows the view to one category and clears the filter
// text. Choosing the active category again, or "", shows all categories.
type CategoryChosen struct {
	Name string
}

// HeaderClicked selects a sort column.
type HeaderClicked struct {
	Key SortKey
}

// NotificationDismissed closes a notification early.
type NotificationDismissed struct {
	ID int64
}

// NotificationExpired closes a notification once its display time ran out.
type NotificationExpired struct {
	ID int64
}

func (FetchStarted) event()          {}
func (FetchSucceeded) event()        {}
func (FetchFailed) event()           {}
func (FilterChanged) event()         {}
func (CategoryChosen) event()        {}
func (HeaderClicked) event()         {}
func (NotificationDismissed) event() {}
func (NotificationExpired) event()   {}

// Reduce returns the state that follows s after ev. It has no side effects.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case FetchStarted:
		if s.Phase == PhaseLoading {
			return s
		}
		s.Phase = PhaseLoading
		s.Err = nil
		return s

	case FetchSucceeded:
		items := ev.Items
		if items == nil {
			items = []catalog.Item{}
		}
		s.Phase = PhaseReady
		s.Err = nil
		s.Collection = items
		s.Derived = s.derive()
		return s.notify(SeveritySuccess, loadedMessage(len(items)))

	case FetchFailed:
		s.Phase = PhaseFailed
		s.Err = ev.Err
		s.Collection = []catalog.Item{}
		s.Derived = []catalog.Item{}
		return s.notify(SeverityError, errmsg.Format(errmsg.OpCatalogFetch, ev.Err))

	case FilterChanged:
		s.FilterText = ev.Text
		s.Derived = s.derive()
		return s

	case CategoryChosen:
		if ev.Name == s.Category {
			s.Category = ""
		} else {
			s.Category = ev.Name
		}
		s.FilterText = ""
		s.Derived = s.derive()
		return s

	case HeaderClicked:
		s.Sort = s.Sort.Click(ev.Key)
		s.Derived = s.derive()
		return s

	case NotificationDismissed:
		return s.clearNotification(ev.ID)

	case NotificationExpired:
		return s.clearNotification(ev.ID)
	}
	return s
}

func (s State) derive() []catalog.Item {
	return Derive(InCategory(s.Collection, s.Category), s.FilterText, s.Sort)
}

func (s State) notify(sev Severity, msg string) State {
	s.lastNotificationID++
	s.Notification = &Notification{
		ID:       s.lastNotificationID,
		Severity: sev,
		Message:  msg,
	}
	return s
}

func (s State) clearNotification(id int64) State {
	if s.Notification != nil && s.Notification.ID == id {
		s.Notification = nil
	}
	return s
}

func loadedMessage(n int) string {
	if n == 1 {
		return "Loaded 1 product"
	}
	return "Loaded " + humanize.Comma(int64(n)) + " products"
}

// NewNotification returns the notification next shows that prev did not.
func NewNotification(prev, next State) (Notification, bool) {
	if next.Notification == nil {
		return Notification{}, false
	}
	if prev.Notification != nil && prev.Notification.ID == next.Notification.ID {
		return Notification{}, false
	}
	return *next.Notification, true
}
