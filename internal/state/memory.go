package state

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryStore[V any] struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, V]
}

// NewMemory creates a process-local Store backed by an expirable LRU.
func NewMemory[V any](opt Options) Store[V] {
	return &memoryStore[V]{
		cache: expirable.NewLRU[string, V](opt.Size, nil, opt.TTL),
	}
}

func (s *memoryStore[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *memoryStore[V]) Set(key string, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, v)
}

func (s *memoryStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(key)
}

func (s *memoryStore[V]) Take(key string) (V, bool) {
	return s.TakeIf(key, nil)
}

func (s *memoryStore[V]) TakeIf(key string, match func(V) bool) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Peek(key)
	if !ok || (match != nil && !match(v)) {
		var zero V
		return zero, false
	}
	s.cache.Remove(key)
	return v, true
}

func (s *memoryStore[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
