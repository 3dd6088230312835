// Package store holds the currently-active template catalog behind an
// atomically-swappable handle.
//
// The store is the only synchronization point between request
// rendering and background reloads. Current is a single atomic load:
// it never blocks and never observes a half-built catalog. A render
// captures one snapshot per request and keeps it for the whole render;
// a concurrent Swap does not invalidate snapshots already handed out.
package store

import (
	"sync/atomic"

	"github.com/docsrv/docsrv/internal/catalog"
)

// Store is the atomically-swappable catalog handle.
type Store struct {
	current atomic.Pointer[catalog.Catalog]
}

// New creates a store seeded with the initial catalog. The initial
// catalog comes from the synchronous startup build, so Current never
// returns nil once the process serves traffic.
func New(initial *catalog.Catalog) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() *catalog.Catalog {
	return s.current.Load()
}

// Swap replaces the active catalog and returns the previous one. The
// new catalog is visible to every subsequent Current call; renders
// holding the previous snapshot finish against it undisturbed.
func (s *Store) Swap(c *catalog.Catalog) *catalog.Catalog {
	return s.current.Swap(c)
}
