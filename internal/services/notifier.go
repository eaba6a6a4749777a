package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"

	DefaultNotificationTTL = 3 * time.Second
)

type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// Notifier keeps short-lived status messages. Expired ones are dropped lazily.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

func NewNotifier(ttl time.Duration, now func() time.Time) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Notifier{ttl: ttl, now: now}
}

func (n *Notifier) Push(level NotificationLevel, message string) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	note := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		ExpiresAt: n.now().Add(n.ttl),
	}
	n.items = append(n.items, note)
	return note
}

func (n *Notifier) Success(message string) Notification { return n.Push(LevelSuccess, message) }
func (n *Notifier) Error(message string) Notification   { return n.Push(LevelError, message) }
func (n *Notifier) Info(message string) Notification    { return n.Push(LevelInfo, message) }

// Active returns unexpired notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	kept := n.items[:0]
	for _, note := range n.items {
		if now.Before(note.ExpiresAt) {
			kept = append(kept, note)
		}
	}
	n.items = kept

	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Dismiss drops a notification before it expires.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, note := range n.items {
		if note.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}
