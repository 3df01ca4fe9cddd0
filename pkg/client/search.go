package client

import (
	"context"
	"sync"
	"time"

	"github.com/abhishek622/hirewizard/internal/debounce"
	"github.com/abhishek622/hirewizard/internal/pagination"
)

// FetchFunc loads one page of a list.
type FetchFunc[T any] func(ctx context.Context, q ListQuery) (pagination.List[T], error)

// Search re-fetches a list as the user types. Only the last keystroke of a
// quiet period issues a request, always for the first page. Page changes
// made through other calls are not coordinated with it.
type Search[T any] struct {
	fetch    FetchFunc[T]
	limit    int
	onResult func(pagination.List[T])
	notify   func(string)
	d        *debounce.Debouncer

	mu    sync.Mutex
	query string
}

// NewSearch builds a Search. notify receives the message of a failed fetch.
func NewSearch[T any](wait time.Duration, limit int, fetch FetchFunc[T], onResult func(pagination.List[T]), notify func(string)) *Search[T] {
	s := &Search[T]{fetch: fetch, limit: limit, onResult: onResult, notify: notify}
	s.d = debounce.New(wait, s.run)
	return s
}

func (s *Search[T]) Type(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
	s.d.Trigger()
}

func (s *Search[T]) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Flush issues the pending search immediately.
func (s *Search[T]) Flush() { s.d.Flush() }

func (s *Search[T]) Stop() { s.d.Stop() }

func (s *Search[T]) run() {
	res, err := s.fetch(context.Background(), ListQuery{Limit: s.limit, Search: s.Query()})
	if err != nil {
		if s.notify != nil {
			s.notify(ErrorMessage(err))
		}
		return
	}
	if s.onResult != nil {
		s.onResult(res)
	}
}
