package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier records notifications for testing.
type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	r.sent = append(r.sent, n)
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestMirror_SendReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	m := NewMirror(rec, 3*time.Second)

	require.NoError(t, m.Send("shelf", "Loaded 20 products", UrgencyLow))
	require.NoError(t, m.Send("shelf", "Failed to fetch products", UrgencyCritical))

	require.Len(t, rec.sent, 2)
	assert.Equal(t, int32(3000), rec.sent[0].Timeout)
	assert.Zero(t, rec.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
	assert.Equal(t, UrgencyCritical, rec.sent[1].Urgency)
}

func TestMirror_Dismiss(t *testing.T) {
	rec := &recordingNotifier{}
	m := NewMirror(rec, time.Second)

	require.NoError(t, m.Dismiss())
	assert.Empty(t, rec.closed, "nothing sent yet")

	require.NoError(t, m.Send("shelf", "hello", UrgencyLow))
	require.NoError(t, m.Dismiss())
	assert.Equal(t, []uint32{1}, rec.closed)

	require.NoError(t, m.Dismiss())
	assert.Len(t, rec.closed, 1, "second dismiss is a no-op")
}

func TestMirror_SendError(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("bus closed")}
	m := NewMirror(rec, time.Second)
	assert.ErrorContains(t, m.Send("shelf", "x", UrgencyLow), "bus closed")
}

func TestMirror_NilNotifier(t *testing.T) {
	m := NewMirror(nil, time.Second)
	assert.NoError(t, m.Send("shelf", "x", UrgencyLow))
	assert.NoError(t, m.Dismiss())
}
