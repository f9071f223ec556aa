package services

import (
	"sync"

	"orchid-shop/models"
)

// cartEntry holds one owner's lines. The entry mutex serializes every
// operation on that owner's cart, so same-owner updates are linearizable
// while different owners proceed in parallel.
type cartEntry struct {
	mu sync.Mutex
	// gone is set when the entry has been removed from the store while a
	// caller may still hold a reference; such callers must retry.
	gone  bool
	lines map[string]*models.CartItem
}

// CartStore is the concurrency-safe owner-to-cart mapping. It is injected
// into CartService rather than held as package state, and it is deliberately
// in-memory only: carts do not survive a restart.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cartEntry)}
}

// get returns the owner's entry without creating one.
func (s *CartStore) get(ownerID string) (*cartEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.carts[ownerID]
	return entry, ok
}

// getOrCreate returns the owner's entry, inserting an empty one if absent.
// Concurrent calls for the same owner observe the same entry.
func (s *CartStore) getOrCreate(ownerID string) *cartEntry {
	s.mu.RLock()
	entry, ok := s.carts[ownerID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.carts[ownerID]; ok {
		return entry
	}
	entry = &cartEntry{lines: make(map[string]*models.CartItem)}
	s.carts[ownerID] = entry
	return entry
}

// remove deletes the owner's cart. Idempotent. The entry is marked gone under
// its own lock so in-flight writers holding a stale reference retry instead
// of mutating a detached cart.
func (s *CartStore) remove(ownerID string) {
	s.mu.Lock()
	entry, ok := s.carts[ownerID]
	if ok {
		delete(s.carts, ownerID)
	}
	s.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.gone = true
		entry.mu.Unlock()
	}
}
