// Package query implements the linear search operations over a store
// snapshot. Searches are O(total fields × total records); the expected
// dataset scale (tens to low thousands of records) does not justify an
// index.
package query

import (
	"iter"

	"github.com/guidopacc/insurapro/models"
)

// Snapshot yields the customers to search, in store order. The engine
// calls it again on every search, so results always reflect the current
// state of the store without the engine ever mutating it.
type Snapshot func() []models.Customer

// InteractionHit is one interaction matched by SearchInteractions, with
// the positional context of its owner.
type InteractionHit struct {
	CustomerIndex int
	Customer      models.Customer
	Index         int
	Interaction   models.Interaction
}

// Engine searches customers and interactions. It reads snapshots and never
// mutates the underlying store.
type Engine struct {
	snapshot Snapshot
}

// NewEngine creates an engine over the given snapshot source.
func NewEngine(snapshot Snapshot) *Engine {
	return &Engine{snapshot: snapshot}
}

// SearchCustomers yields every customer matching term, paired with its
// position in the store. The sequence is lazy and restartable: each
// iteration takes a fresh snapshot. An empty result is not an error.
func (e *Engine) SearchCustomers(term string) iter.Seq2[int, models.Customer] {
	return func(yield func(int, models.Customer) bool) {
		for i, c := range e.snapshot() {
			if !c.Matches(term) {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// SearchInteractions yields every interaction matching term across all
// customers, reporting both the owning customer's position and the
// interaction's position within that customer.
func (e *Engine) SearchInteractions(term string) iter.Seq[InteractionHit] {
	return func(yield func(InteractionHit) bool) {
		for i, c := range e.snapshot() {
			for j, interaction := range c.Interactions {
				if !interaction.Matches(term) {
					continue
				}
				hit := InteractionHit{
					CustomerIndex: i,
					Customer:      c,
					Index:         j,
					Interaction:   interaction,
				}
				if !yield(hit) {
					return
				}
			}
		}
	}
}
