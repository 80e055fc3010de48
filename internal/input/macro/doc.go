// Package macro provides keyboard macro recording and playback.
//
// A macro is a recorded sequence of key events that can be replayed
// through the same key-processing path that produced it. Macros are
// stored by register: lowercase letters (a-z) or digits (0-9).
//
// # Recording
//
// Recording is started with StartRecording. While recording, the embedding
// loop passes each key to Record. StopRecording saves the keys:
//
//	store := macro.NewStore()
//	store.StartRecording(reg, false)
//	// ... each key is passed to store.Record ...
//	store.StopRecording()
//
// Recording to an uppercase register ("qA") appends to the existing macro.
//
// # Playback
//
// The Player replays a macro through a handler, count times. Playback may
// nest (a macro may play another macro) up to MaxPlayDepth levels.
//
//	player := macro.NewPlayer(store)
//	err := player.Play(ctx, reg, 3, session.HandleKey)
//
// # Persistence
//
// Macros can be saved to and loaded from disk as JSON, so they survive
// across sessions. Writes are atomic (temp file + rename).
//
// # Thread Safety
//
// Store and Player do no locking. Callers serialize access, typically
// through the session lock.
package macro
