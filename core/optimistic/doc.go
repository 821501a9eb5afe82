// Package optimistic provides a generic client-side cache with optimistic transactions.
//
// # Cache
//
// Cache holds the last known-good ordered sequence of items, keyed by a caller supplied function.
// Readers get copies. Writers use Replace, Upsert, Swap and Remove, or Apply with a Mutation built
// by AppendOp, UpsertOp, SwapOp and RemoveOp. All operations are synchronous and guarded by a
// single RWMutex, so a snapshot and the change that follows it are never interleaved with another
// writer.
//
// Invalidate marks the sequence stale. Fetch serves the cached copy while it is fresh and reloads
// it otherwise; concurrent reloads share one call through singleflight.
//
// # Transactions
//
// A Tx wraps one optimistic write in three explicit phases:
//
//  1. Begin: capture the sequence by value and apply the optimistic mutation, atomically.
//  2. Commit: apply the reconciling mutation (for example swapping a placeholder for the
//     server record) and invalidate the cache.
//  3. Rollback: restore the captured sequence exactly.
//
// Commit and Rollback are mutually exclusive; resolving a transaction twice returns ErrTxDone.
//
// # Usage
//
//	c := optimistic.NewCache(func(m Movie) int64 { return m.ID })
//	tx := optimistic.Begin(c, c.RemoveOp(id))
//	if err := remote.Delete(ctx, id); err != nil {
//	    _ = tx.Rollback()
//	    return err
//	}
//	_ = tx.Commit(c.RemoveOp(id))
package optimistic
