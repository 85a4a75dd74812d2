// Package notify mirrors in-app notifications to the desktop via D-Bus.
package notify

import "time"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a Notifier that drops everything.
func Disabled() Notifier {
	return &stubNotifier{}
}

// Mirror forwards messages to a Notifier, each one replacing the previous,
// so at most one shelf notification is on the desktop at a time.
type Mirror struct {
	notifier Notifier
	timeout  time.Duration
	lastID   uint32
}

// NewMirror creates a Mirror whose notifications expire after timeout.
func NewMirror(n Notifier, timeout time.Duration) *Mirror {
	if n == nil {
		n = Disabled()
	}
	return &Mirror{notifier: n, timeout: timeout}
}

// Send shows body on the desktop.
func (m *Mirror) Send(title, body string, urgency Urgency) error {
	id, err := m.notifier.Notify(Notification{
		Title:      title,
		Body:       body,
		Timeout:    int32(m.timeout.Milliseconds()), //nolint:gosec // display durations are far below MaxInt32 ms
		ReplacesID: m.lastID,
		Urgency:    urgency,
	})
	if err != nil {
		return err
	}
	if id != 0 {
		m.lastID = id
	}
	return nil
}

// Dismiss closes the last notification sent, if any.
func (m *Mirror) Dismiss() error {
	if m.lastID == 0 {
		return nil
	}
	id := m.lastID
	m.lastID = 0
	return m.notifier.Close(id)
}
