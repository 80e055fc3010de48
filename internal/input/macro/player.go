package macro

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// MaxPlayDepth limits how deeply macros may invoke other macros.
const MaxPlayDepth = 100

// ErrRecursionLimit is returned when nested playback exceeds MaxPlayDepth.
var ErrRecursionLimit = errors.New("macro recursion limit reached")

// EventHandler processes one replayed key event. A non-nil error stops
// playback.
type EventHandler func(ev key.Event) error

// Player replays recorded macros.
type Player struct {
	store *Store
	depth int
}

// NewPlayer creates a new macro player that uses the given store for macro storage.
func NewPlayer(store *Store) *Player {
	return &Player{store: store}
}

// Play replays a macro from the specified register.
// The count parameter specifies how many times to replay the macro (minimum 1).
// Playback is synchronous and stops at the first handler error or when ctx
// is done.
func (p *Player) Play(ctx context.Context, r vim.Register, count int, handler EventHandler) error {
	if !IsValidRegister(r) {
		return fmt.Errorf("%w: %v", ErrInvalidRegister, r)
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	events := p.store.Get(r)
	if len(events) == 0 {
		return fmt.Errorf("%w: %v", ErrEmptyRegister, r)
	}

	if count < 1 {
		count = 1
	}

	if p.depth >= MaxPlayDepth {
		return ErrRecursionLimit
	}
	p.depth++
	defer func() { p.depth-- }()

	// Recorded before playing so that @@ inside the macro refers to it.
	p.store.SetLastPlayed(r)

	for i := 0; i < count; i++ {
		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := handler(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlayLast replays the last played macro.
// Equivalent to @@ in Vim.
func (p *Player) PlayLast(ctx context.Context, count int, handler EventHandler) error {
	r, ok := p.store.LastPlayed()
	if !ok {
		return ErrNoLastPlayed
	}
	return p.Play(ctx, r, count, handler)
}

// IsPlaying returns true if a macro is currently being played.
func (p *Player) IsPlaying() bool {
	return p.depth > 0
}

// Depth returns the current nesting level of playback.
func (p *Player) Depth() int {
	return p.depth
}
