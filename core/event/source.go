package event

import (
	"errors"
	"sync"
)

// Source is a list of subscribed handlers. The zero value is ready to use and
// safe for concurrent use.
type Source[T any] struct {
	mu       sync.Mutex
	handlers []Handler[T]
}

// Add subscribes h. The same handler may be subscribed more than once; zero
// handlers are ignored.
func (s *Source[T]) Add(h Handler[T]) {
	if h.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers = append(s.handlers, h)
}

// Remove unsubscribes the most recent subscription equal to h. It does nothing
// if h is not subscribed.
func (s *Source[T]) Remove(h Handler[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.handlers) - 1; i >= 0; i-- {
		if s.handlers[i] == h {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Fire invokes every handler subscribed at the time of the call, in
// subscription order. Handlers run outside the lock, so they may subscribe or
// unsubscribe. Their errors are joined.
func (s *Source[T]) Fire(sender any, args T) error {
	s.mu.Lock()
	snapshot := append([]Handler[T](nil), s.handlers...)
	s.mu.Unlock()

	var errs []error
	for _, h := range snapshot {
		if err := h.Invoke(sender, args); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Len returns the number of subscriptions.
func (s *Source[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handlers)
}
