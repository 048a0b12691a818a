package ranges

import (
	"sync"

	"github.com/google/uuid"
)

// Change describes an update to a Range1d.
type Change struct {
	// Range is the range that changed.
	Range *Range1d

	// OldStart and OldEnd are the endpoints before the change.
	OldStart, OldEnd float64

	// Start and End are the endpoints after the change.
	Start, End float64
}

// Observer is called after a range changes.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id    uint64
	owner *Range1d
}

// Unsubscribe removes the observer. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.unsubscribe(s.id)
	s.owner = nil
}

type observerEntry struct {
	id       uint64
	observer Observer
}

// Range1d is a mutable [start, end] interval in data space.
//
// Range1d does not enforce start <= end; callers that resize ranges are
// expected to keep the order. Observers run synchronously on the goroutine
// that made the change, after the new values are visible.
type Range1d struct {
	mu    sync.RWMutex
	id    string
	start float64
	end   float64

	observers []observerEntry
	nextID    uint64
}

// NewRange1d creates a range spanning [start, end].
func NewRange1d(start, end float64) *Range1d {
	return &Range1d{
		id:    uuid.NewString(),
		start: start,
		end:   end,
	}
}

// ID returns the range's model identifier.
func (r *Range1d) ID() string {
	return r.id
}

// Start returns the low endpoint.
func (r *Range1d) Start() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.start
}

// End returns the high endpoint.
func (r *Range1d) End() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.end
}

// Interval returns a snapshot of the current endpoints.
func (r *Range1d) Interval() Interval {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Interval{Start: r.start, End: r.end}
}

// SetStart moves the low endpoint.
func (r *Range1d) SetStart(v float64) {
	r.Set(v, r.End())
}

// SetEnd moves the high endpoint.
func (r *Range1d) SetEnd(v float64) {
	r.Set(r.Start(), v)
}

// Set moves both endpoints and notifies observers once.
// Nothing is published when neither endpoint changes.
func (r *Range1d) Set(start, end float64) {
	r.mu.Lock()
	if r.start == start && r.end == end {
		r.mu.Unlock()
		return
	}
	change := Change{
		Range:    r,
		OldStart: r.start,
		OldEnd:   r.end,
		Start:    start,
		End:      end,
	}
	r.start = start
	r.end = end
	observers := make([]Observer, len(r.observers))
	for i, e := range r.observers {
		observers[i] = e.observer
	}
	r.mu.Unlock()

	for _, obs := range observers {
		obs(change)
	}
}

// Subscribe registers an observer for changes.
// Observers are called in subscription order.
func (r *Range1d) Subscribe(observer Observer) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.observers = append(r.observers, observerEntry{id: id, observer: observer})

	return &Subscription{id: id, owner: r}
}

// ObserverCount returns the number of registered observers.
func (r *Range1d) ObserverCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

func (r *Range1d) unsubscribe(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.observers {
		if e.id == id {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}
