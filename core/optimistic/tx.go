package optimistic

import (
	"errors"
	"sync"
)

// ErrTxDone is returned when a transaction is committed or rolled back twice.
var ErrTxDone = errors.New("optimistic: transaction already resolved")

// State is the lifecycle position of a transaction.
type State int

const (
	// StatePending means the optimistic change is visible and the remote call is in flight.
	StatePending State = iota
	// StateCommitted means the remote call succeeded and the cache was reconciled.
	StateCommitted
	// StateRolledBack means the remote call failed and the snapshot was restored.
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// Tx is one optimistic mutation: snapshot and apply happen together in Begin,
// then exactly one of Commit or Rollback resolves it.
type Tx[K comparable, T any] struct {
	cache    *Cache[K, T]
	snapshot []T

	mu    sync.Mutex
	state State
}

// Begin snapshots the cache and applies the optimistic mutation in one atomic step.
func Begin[K comparable, T any](c *Cache[K, T], apply Mutation[T]) *Tx[K, T] {
	return &Tx[K, T]{
		cache:    c,
		snapshot: c.Apply(apply),
	}
}

// Snapshot returns a copy of the sequence captured before the optimistic apply.
func (t *Tx[K, T]) Snapshot() []T {
	out := make([]T, len(t.snapshot))
	copy(out, t.snapshot)
	return out
}

// State returns the current lifecycle state.
func (t *Tx[K, T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Commit reconciles the cache with the server-confirmed result and marks it stale
// so the next read refetches. A nil reconcile only invalidates.
func (t *Tx[K, T]) Commit(reconcile Mutation[T]) error {
	if err := t.resolve(StateCommitted); err != nil {
		return err
	}
	if reconcile != nil {
		t.cache.Apply(reconcile)
	}
	t.cache.Invalidate()
	return nil
}

// Rollback restores the cache to the exact snapshot taken by Begin.
func (t *Tx[K, T]) Rollback() error {
	if err := t.resolve(StateRolledBack); err != nil {
		return err
	}
	t.cache.restore(t.snapshot)
	return nil
}

func (t *Tx[K, T]) resolve(to State) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return ErrTxDone
	}
	t.state = to
	return nil
}
