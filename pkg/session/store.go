// Package session keeps short-lived per-session state in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is a bounded map whose entries expire after a fixed TTL.
// It is safe for concurrent use.
type Store[T any] struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, T]
}

func NewStore[T any](size int, ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: expirable.NewLRU[string, T](size, nil, ttl),
	}
}

func (s *Store[T]) Get(key string) (T, bool) {
	return s.entries.Get(key)
}

func (s *Store[T]) Put(key string, value T) {
	s.entries.Add(key, value)
}

func (s *Store[T]) Delete(key string) {
	s.entries.Remove(key)
}

func (s *Store[T]) Len() int {
	return s.entries.Len()
}

// GetOrCreate returns the entry for key, building it with create when missing.
// A create error leaves the store untouched.
func (s *Store[T]) GetOrCreate(key string, create func() (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.entries.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		var zero T
		return zero, err
	}
	s.entries.Add(key, v)
	return v, nil
}

// NewID returns a fresh random session identifier.
func NewID() string {
	return uuid.NewString()
}
