package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// RegisterLookup returns the text of the register named by c.
type RegisterLookup func(c byte) (string, bool)

// Evaluator computes the text of the = register.
type Evaluator interface {
	Eval(ctx context.Context, src string, lookup RegisterLookup) (string, error)
}

// ErrEvalTimeout is returned when an expression runs past its deadline.
var ErrEvalTimeout = errors.New("expression timed out")

// LuaEvaluator evaluates = register expressions as Lua.
//
// Each evaluation runs in a fresh state with only the base, string, table
// and math libraries. Expressions may read registers with reg("a").
type LuaEvaluator struct {
	timeout time.Duration
}

// NewLuaEvaluator creates an evaluator that stops expressions after
// timeout. A non-positive timeout means no limit beyond the caller's
// context.
func NewLuaEvaluator(timeout time.Duration) *LuaEvaluator {
	return &LuaEvaluator{timeout: timeout}
}

// Eval runs src and returns its value as text. src is tried first as an
// expression and then as a chunk, so both "1 + 2" and
// "local s = reg('a') return s:upper()" work.
func (e *LuaEvaluator) Eval(ctx context.Context, src string, lookup RegisterLookup) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)
	L.SetContext(ctx)

	L.SetGlobal("reg", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if len(name) != 1 || lookup == nil {
			L.Push(lua.LNil)
			return 1
		}
		text, ok := lookup(name[0])
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(text))
		return 1
	}))

	fn, err := L.LoadString("return " + src)
	if err != nil {
		fn, err = L.LoadString(src)
		if err != nil {
			return "", fmt.Errorf("invalid expression: %w", err)
		}
	}

	L.Push(fn)
	if err := callWithRecovery(L); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", ErrEvalTimeout, ctx.Err())
		}
		return "", err
	}

	ret := L.Get(-1)
	L.Pop(1)
	return luaToText(ret), nil
}

// openSafeLibraries opens the Lua libraries without file, process or
// module access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "collectgarbage"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func callWithRecovery(L *lua.LState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return L.PCall(0, 1, nil)
}

// luaToText converts an expression result to register text.
func luaToText(v lua.LValue) string {
	switch v := v.(type) {
	case *lua.LNilType:
		return ""
	case lua.LBool:
		if v {
			return "1"
		}
		return "0"
	case *lua.LTable:
		var out []byte
		v.ForEach(func(_, item lua.LValue) {
			out = append(out, luaToText(item)...)
			out = append(out, '\n')
		})
		return string(out)
	}
	return v.String()
}
