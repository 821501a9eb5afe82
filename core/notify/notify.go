package notify

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Type classifies a notification.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// DefaultTimeout is how long a notification stays visible when no timeout is given.
const DefaultTimeout = 3 * time.Second

// Notification is a transient message shown to the user.
type Notification struct {
	ID      int64     `json:"id"`
	Message string    `json:"message"`
	Type    Type      `json:"type"`
	Created time.Time `json:"created"`
}

// Center keeps the currently visible notifications and expires them after their timeout.
type Center struct {
	mu     sync.RWMutex
	items  []Notification
	timers map[int64]*time.Timer
	nextID atomic.Int64
	now    func() time.Time
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{
		items:  []Notification{},
		timers: make(map[int64]*time.Timer),
		now:    time.Now,
	}
}

// Add shows a message and schedules its removal. An empty type means info, a non-positive
// timeout means DefaultTimeout. The returned id is never reused.
func (c *Center) Add(message string, typ Type, timeout time.Duration) int64 {
	if typ == "" {
		typ = TypeInfo
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	id := c.nextID.Add(1)

	c.mu.Lock()
	c.items = append(c.items, Notification{ID: id, Message: message, Type: typ, Created: c.now()})
	c.timers[id] = time.AfterFunc(timeout, func() { c.Remove(id) })
	c.mu.Unlock()

	return id
}

// Success adds a success notification with the default timeout.
func (c *Center) Success(message string) int64 {
	return c.Add(message, TypeSuccess, 0)
}

// Error adds an error notification with the default timeout.
func (c *Center) Error(message string) int64 {
	return c.Add(message, TypeError, 0)
}

// Remove drops a notification. Unknown ids are ignored.
func (c *Center) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	c.items = slices.DeleteFunc(c.items, func(n Notification) bool {
		return n.ID == id
	})
}

// List returns the visible notifications, oldest first.
func (c *Center) List() []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Close stops every pending expiry timer.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}
