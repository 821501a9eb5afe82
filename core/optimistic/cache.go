package optimistic

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Mutation transforms the cached sequence. It receives a private copy and returns the new sequence.
type Mutation[T any] func(items []T) []T

// LoadFunc fetches the authoritative sequence from the remote side.
type LoadFunc[T any] func(ctx context.Context) ([]T, error)

// Cache is an ordered, keyed collection of items guarded by a mutex.
// Readers always receive copies; writes go through the defined operations.
type Cache[K comparable, T any] struct {
	mu     sync.RWMutex
	items  []T
	key    func(T) K
	loaded bool
	stale  bool
	// gen counts local mutations so a refresh can tell whether its result predates one.
	gen uint64

	sf singleflight.Group
}

// NewCache creates an empty cache using key to identify items.
func NewCache[K comparable, T any](key func(T) K) *Cache[K, T] {
	return &Cache[K, T]{
		items: []T{},
		key:   key,
	}
}

// Items returns a copy of the cached sequence.
func (c *Cache[K, T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len returns the number of cached items.
func (c *Cache[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the item with the given key.
func (c *Cache[K, T]) Find(k K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(c.items, k); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Loaded reports whether the cache has been filled by Replace at least once.
func (c *Cache[K, T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Stale reports whether the cache was invalidated since the last Replace.
func (c *Cache[K, T]) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}

// Invalidate marks the cache stale; the next Fetch reloads it.
func (c *Cache[K, T]) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// Replace swaps the whole sequence and clears the stale flag.
func (c *Cache[K, T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []T{}
	}
	c.loaded = true
	c.stale = false
}

// Upsert replaces the item with the same key in place, or appends it.
func (c *Cache[K, T]) Upsert(item T) {
	c.Apply(c.UpsertOp(item))
}

// Swap replaces the item stored under old with item, keeping its position.
// When old is absent it behaves like Upsert.
func (c *Cache[K, T]) Swap(old K, item T) {
	c.Apply(c.SwapOp(old, item))
}

// Remove drops the item with the given key. Unknown keys are a no-op.
func (c *Cache[K, T]) Remove(k K) {
	c.Apply(c.RemoveOp(k))
}

// Apply runs m atomically and returns the sequence as it was before m ran.
func (c *Cache[K, T]) Apply(m Mutation[T]) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.items
	next := m(slices.Clone(before))
	if next == nil {
		next = []T{}
	}
	c.items = next
	c.gen++
	return slices.Clone(before)
}

// restore puts a snapshot back, keeping the loaded/stale flags untouched.
func (c *Cache[K, T]) restore(snapshot []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(snapshot)
	c.gen++
}

func (c *Cache[K, T]) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// replaceSince installs a loaded sequence unless a mutation ran after gen was read.
// In that case the loaded list may miss the mutation, so the local sequence is kept
// and the cache stays stale for the next read to reload.
func (c *Cache[K, T]) replaceSince(gen uint64, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		c.stale = true
		return
	}
	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []T{}
	}
	c.loaded = true
	c.stale = false
}

// AppendOp returns a mutation appending item.
func (c *Cache[K, T]) AppendOp(item T) Mutation[T] {
	return func(items []T) []T {
		return append(items, item)
	}
}

// UpsertOp returns a mutation replacing the item with item's key, or appending it.
func (c *Cache[K, T]) UpsertOp(item T) Mutation[T] {
	return c.SwapOp(c.key(item), item)
}

// SwapOp returns a mutation replacing the item keyed old with item.
// If old is missing the item's own key is tried before appending.
func (c *Cache[K, T]) SwapOp(old K, item T) Mutation[T] {
	return func(items []T) []T {
		if i := c.index(items, old); i >= 0 {
			items[i] = item
			// Drop a second copy that may already carry the new key.
			return c.dedupe(items, i)
		}
		if i := c.index(items, c.key(item)); i >= 0 {
			items[i] = item
			return items
		}
		return append(items, item)
	}
}

// RemoveOp returns a mutation filtering out the item with key k.
func (c *Cache[K, T]) RemoveOp(k K) Mutation[T] {
	return func(items []T) []T {
		return slices.DeleteFunc(items, func(item T) bool {
			return c.key(item) == k
		})
	}
}

// Fetch returns the cached items, loading them first when the cache was never loaded or is stale.
// Concurrent loads are collapsed into a single call.
func (c *Cache[K, T]) Fetch(ctx context.Context, load LoadFunc[T]) ([]T, error) {
	c.mu.RLock()
	fresh := c.loaded && !c.stale
	c.mu.RUnlock()

	if fresh {
		return c.Items(), nil
	}
	return c.Refresh(ctx, load)
}

// Refresh reloads the cache through load, sharing the call with concurrent refreshes.
// The shared load runs detached from any single caller's cancellation; a caller whose
// ctx ends stops waiting and gets ctx.Err(). A load that overlaps a local mutation
// does not overwrite it.
func (c *Cache[K, T]) Refresh(ctx context.Context, load LoadFunc[T]) ([]T, error) {
	ch := c.sf.DoChan("refresh", func() (interface{}, error) {
		gen := c.generation()
		items, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.replaceSince(gen, items)
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
	}
	return c.Items(), nil
}

func (c *Cache[K, T]) index(items []T, k K) int {
	return slices.IndexFunc(items, func(item T) bool {
		return c.key(item) == k
	})
}

// dedupe removes any item other than the one at keep sharing its key.
func (c *Cache[K, T]) dedupe(items []T, keep int) []T {
	k := c.key(items[keep])
	out := items[:0]
	for i, item := range items {
		if i != keep && c.key(item) == k {
			continue
		}
		out = append(out, item)
	}
	return out
}
