// Package cache is a small in-process TTL cache used in front of read-heavy
// repositories.
package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item struct {
	value   any
	expires time.Time // zero when the store has no TTL
}

func (it item) live(now time.Time) bool {
	return it.expires.IsZero() || now.Before(it.expires)
}

// Store maps keys to values for ttl. Concurrent misses on one key share a
// single loader call, and a load that overlaps an invalidation is returned
// only to callers that joined it before the invalidation, and is not kept.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]item
	epoch uint64

	group singleflight.Group
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: map[string]item{}}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if !it.live(s.now()) {
		delete(s.items, key)
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	s.mu.Lock()
	s.put(key, value)
	s.mu.Unlock()
}

// put requires s.mu.
func (s *Store) put(key string, value any) {
	var expires time.Time
	if s.ttl > 0 {
		expires = s.now().Add(s.ttl)
	}
	s.items[key] = item{value: value, expires: expires}
}

// DeletePrefix drops every key that starts with prefix.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
	s.epoch++
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// GetOrLoad returns the cached value for key, or runs load once for all
// concurrent callers. Load errors are returned and never cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if load == nil {
		return nil, errors.New("cache: nil loader")
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	// Callers that arrive after an invalidation start a new flight instead
	// of joining a load that began before it.
	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	v, err, _ := s.group.Do(key+"#"+strconv.FormatUint(epoch, 10), func() (any, error) {
		s.mu.Lock()
		if it, ok := s.items[key]; ok && it.live(s.now()) {
			s.mu.Unlock()
			return it.value, nil
		}
		s.mu.Unlock()

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.epoch == epoch {
			s.put(key, v)
		}
		s.mu.Unlock()
		return v, nil
	})
	return v, err
}
