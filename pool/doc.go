// Package pool hands out reusable identifiers and round-robin items.
//
// What:
//
//   - Allocator issues string tags "<prefix><n>". Released tags go to a FIFO
//     free list and are handed out again before the counter advances.
//   - Cycle[T] walks a fixed list of items round-robin. Released items are
//     handed out first, in release order.
//
// Why:
//
//	An editor session names every marking with a tag and gives it a colour.
//	Tags must stay unique while in use and stay short across long sessions;
//	colours should rotate through the palette and reuse the ones freed by
//	deleted markings.
//
// Complexity:
//
//   - Allocator.Acquire, Allocator.Release: O(1) amortised.
//   - Cycle.Next: O(1). Cycle.Release: O(1).
//
// Neither type is safe for concurrent use; each session owns its own.
package pool
