// Package mark provides cursor-position bookkeeping for the modal engine:
// named marks and the bounded jump and change lists.
//
// Marks are keyed by a single byte. Lowercase marks are conventionally
// buffer-local and uppercase marks global, but the Store treats all keys
// alike; the distinction belongs to the embedding editor.
//
// # History Rings
//
// The jump list and change list are fixed-capacity rings. Once full, each
// push evicts the oldest position. Navigation moves a cursor index through
// the ring and never allocates:
//
//	jumps := mark.NewRing(mark.DefaultCapacity)
//	jumps.Push(mark.Position{Line: 10})
//	pos, ok := jumps.Back()
package mark
