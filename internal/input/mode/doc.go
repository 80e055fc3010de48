// Package mode implements the modal key-processing engine.
//
// The engine is a state machine that turns a stream of key presses into
// editing intents. It never touches buffer contents: each key produces a
// KeyResult describing what the caller should do (move the cursor over a
// motion, delete a text object, put a register, switch modes).
//
// The engine supports:
//   - Normal mode: navigation and commands
//   - Insert mode and Replace mode: text input, passed through to the caller
//   - Visual, Visual Line and Visual Block modes: selection
//   - Command mode: the ":" line (:w, :q, :wq, :x, :q!)
//   - Operator-pending mode: waiting for a motion or text object
//
// # Architecture
//
// State is the aggregate root. It holds the current mode, the transient
// composition state (pending operator, counts, selected register, text
// object prefix, find-char memory, command line) and owns the register,
// mark and macro stores plus the jump and change lists.
//
// ProcessKey dispatches on the current mode to one handler per mode:
//
//	result := mode.ProcessKey(state, 'd', key.ModNone)
//
// Handlers update composition state and enter or leave operator-pending
// mode themselves. Every other mode change is applied by the caller:
//
//	state.Apply(result)
//
// # Two-Step Keys
//
// Keys that need an argument (the register after ", the target of f, the
// mark after m) return a result with a non-zero Await. The caller passes
// the next key to Resolve instead of ProcessKey:
//
//	r := mode.ProcessKey(state, '"', 0)   // r.Await.Kind == AwaitRegister
//	r = mode.Resolve(state, r.Await, 'a', 0)
//
// # Mode Lifecycle
//
//	┌─────────┐  Enter*()   ┌─────────┐
//	│ Mode A  │ ──────────▶ │ Mode B  │
//	└─────────┘             └─────────┘
//
// Every Enter* transition except EnterOperatorPending clears the
// composition state, then notifies mode change callbacks.
package mode
