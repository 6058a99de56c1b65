package export

import (
	"sync"
	"time"
)

const (
	GeneratingTitle       = "Generating PDF..."
	GeneratingDescription = "Please wait while we prepare your quotation."
	SucceededTitle        = "PDF Generated!"
	SucceededDescription  = "Your quotation has been downloaded successfully."
	FailedTitle           = "Error"
	FailedDescription     = "Failed to generate PDF. Please try again."
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	State       State     `json:"state"`
	At          time.Time `json:"at"`
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Inbox keeps the most recent notifications of one form session and tracks
// the session's own export state from them.
type Inbox struct {
	mu     sync.Mutex
	max    int
	items  []Notification
	active int
}

func NewInbox(max int) *Inbox {
	if max <= 0 {
		max = 20
	}
	return &Inbox{max: max}
}

func (b *Inbox) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch n.State {
	case StateGenerating:
		b.active++
	case StateSucceeded, StateFailed:
		if b.active > 0 {
			b.active--
		}
	}
	b.items = append(b.items, n)
	if len(b.items) > b.max {
		b.items = append([]Notification(nil), b.items[len(b.items)-b.max:]...)
	}
}

func (b *Inbox) List() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}

// State is StateGenerating while an export of this session runs.
func (b *Inbox) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active > 0 {
		return StateGenerating
	}
	return StateIdle
}
