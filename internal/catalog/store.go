package catalog

import (
	"context"
	"log"
	"sync"
	"time"
)

// Store holds the live catalog snapshot and fans out replacements to subscribers.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
	subs    []chan *Catalog
}

func NewStore(initial *Catalog) *Store {
	return &Store{current: Normalize(initial)}
}

// Current returns the latest snapshot. Never nil.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new snapshot wholesale and notifies subscribers.
func (s *Store) Replace(c *Catalog) {
	c = Normalize(c)

	s.mu.Lock()
	s.current = c
	subs := append([]chan *Catalog(nil), s.subs...)
	s.mu.Unlock()

	for _, ch := range subs {
		publishLatest(ch, c)
	}
}

// Subscribe returns a channel that receives every replacement snapshot.
// A slow reader only ever sees the most recent one.
func (s *Store) Subscribe() <-chan *Catalog {
	ch := make(chan *Catalog, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func publishLatest(ch chan *Catalog, c *Catalog) {
	for {
		select {
		case ch <- c:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Refresh loads once from src and replaces the snapshot on success.
func (s *Store) Refresh(ctx context.Context, src Source) error {
	c, err := src.Load(ctx)
	if err != nil {
		return err
	}
	s.Replace(c)
	return nil
}

// Watch refreshes from src every interval until ctx is done. Load failures keep the
// previous snapshot.
func (s *Store) Watch(ctx context.Context, src Source, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx, src); err != nil {
				log.Printf("[CATALOG] action=refresh msg=keeping previous snapshot: %v", err)
			}
		}
	}
}
