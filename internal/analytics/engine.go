// Package analytics derives time-windowed statistics from the game data
// store. The engine holds no state of its own: every result is recomputed
// from stored history on demand.
package analytics

import (
	"diamond-stats/internal/store"
)

type Engine struct {
	store *store.Store
}

func New(st *store.Store) *Engine {
	return &Engine{store: st}
}
