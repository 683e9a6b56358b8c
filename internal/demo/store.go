package demo

import (
	"sync"
	"time"
)

// Subscriber observes every dispatched action together with the state it
// produced.
type Subscriber func(Action, State)

type subscription struct {
	id int
	fn Subscriber
}

// Store holds the root view's state and serialises updates through Reduce.
type Store struct {
	mu       sync.Mutex
	settings Settings
	state    State
	subs     []subscription
	nextID   int
}

func NewStore(settings Settings, now time.Time) *Store {
	if settings.Location != nil {
		now = now.In(settings.Location)
	}
	return &Store{settings: settings, state: NewState(now)}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Settings() Settings { return s.settings }

// Dispatch reduces a into the current state, notifies subscribers in
// subscription order and returns the effects for the caller to run.
func (s *Store) Dispatch(a Action) []Effect {
	s.mu.Lock()
	next, effects := Reduce(s.settings, s.state, a)
	s.state = next
	subs := make([]Subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub.fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(a, next)
	}
	return effects
}

// Subscribe registers fn and returns a func that removes it again.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Reset remounts the view: state goes back to its initial values and any
// outstanding progress tick becomes stale.
func (s *Store) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Location != nil {
		now = now.In(s.settings.Location)
	}
	gen := s.state.Generation + 1
	s.state = NewState(now)
	s.state.Generation = gen
}
