package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)}
}

func TestNotifier_Expiry(t *testing.T) {
	clock := newFakeClock()
	n := NewNotifier(3*time.Second, clock.Now)

	n.Success("Application added successfully!")
	clock.Advance(time.Second)
	n.Error("Failed to add application. Please try again.")

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, LevelSuccess, active[0].Level)
	assert.Equal(t, LevelError, active[1].Level)

	clock.Advance(2 * time.Second)
	active = n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, LevelError, active[0].Level)

	clock.Advance(time.Second)
	assert.Empty(t, n.Active())
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(0, nil)
	first := n.Info("one")
	n.Info("two")

	n.Dismiss(first.ID)
	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "two", active[0].Message)
	assert.NotEmpty(t, active[0].ID)
}
