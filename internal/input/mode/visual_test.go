package mode

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modal/internal/input/vim"
)

func TestVisualToggles(t *testing.T) {
	tests := []struct {
		keys string
		want Mode
	}{
		{"v", ModeVisual},
		{"vv", ModeNormal},
		{"vV", ModeVisualLine},
		{"VV", ModeNormal},
		{"v<C-v>", ModeVisualBlock},
		{"<C-v><C-v>", ModeNormal},
		{"<C-v>v", ModeVisual},
		{"v<Esc>", ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			s := NewState()
			feed(t, s, tt.keys)
			assert.Equal(t, tt.want, s.Mode())
		})
	}
}

func TestVisualOperators(t *testing.T) {
	tests := []struct {
		keys   string
		action Action
		op     vim.Operator
		mode   Mode
	}{
		{"d", ActionDelete, vim.OpDelete, ModeNormal},
		{"x", ActionDelete, vim.OpDelete, ModeNormal},
		{"y", ActionYank, vim.OpYank, ModeNormal},
		{"c", ActionChange, vim.OpChange, ModeInsert},
		{"s", ActionChange, vim.OpChange, ModeInsert},
		{">", ActionIndentRight, vim.OpIndentRight, ModeNormal},
		{"<lt>", ActionIndentLeft, vim.OpIndentLeft, ModeNormal},
		{"u", ActionNone, vim.OpLowercase, ModeNormal},
		{"U", ActionNone, vim.OpUppercase, ModeNormal},
		{"~", ActionNone, vim.OpSwapCase, ModeNormal},
		{"gc", ActionNone, vim.OpComment, ModeNormal},
		{"zf", ActionNone, vim.OpFold, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			s := NewState()
			r := last(t, s, "V"+tt.keys)
			assert.True(t, r.Handled)
			assert.Equal(t, tt.action, r.Action)
			assert.Equal(t, mo.Some(tt.op), r.Operator)
			assert.Equal(t, mo.Some(tt.mode), r.NewMode)
			assert.Equal(t, tt.mode, s.Mode())
		})
	}
}

func TestVisualMotionsKeepMode(t *testing.T) {
	s := NewState()
	r := last(t, s, "v3w")
	assert.Equal(t, ActionMoveCursor, r.Action)
	assert.Equal(t, mo.Some(vim.MotionWordForward), r.Motion)
	assert.Equal(t, 3, r.Count)
	assert.Equal(t, ModeVisual, s.Mode())

	r = last(t, s, "fa")
	assert.Equal(t, mo.Some(vim.MotionFindChar), r.Motion)
	assert.Equal(t, ModeVisual, s.Mode())

	r = last(t, s, "gg")
	assert.Equal(t, mo.Some(vim.MotionDocumentStart), r.Motion)
	assert.Equal(t, ModeVisual, s.Mode())
}

func TestVisualTextObject(t *testing.T) {
	s := NewState()
	results := feed(t, s, "viw")
	require.Len(t, results, 3)
	assert.Equal(t, AwaitTextObject, results[1].Await.Kind)

	r := results[2]
	assert.Equal(t, ActionSelectTextObject, r.Action)
	assert.Equal(t, mo.Some(vim.InnerWord), r.TextObject)
	assert.Equal(t, ModeVisual, s.Mode())

	r = last(t, s, "a\"")
	assert.Equal(t, mo.Some(vim.AroundDoubleQuote), r.TextObject)
}

func TestVisualRegister(t *testing.T) {
	s := NewState()
	r := last(t, s, "v\"zy")
	reg, _ := vim.NamedRegister('z')
	assert.Equal(t, ActionYank, r.Action)
	assert.Equal(t, mo.Some(reg), r.Register)
}

func TestVisualPutAndJoin(t *testing.T) {
	for keys, want := range map[string]Action{
		"vp": ActionPutAfter,
		"vP": ActionPutBefore,
		"VJ": ActionJoinLines,
	} {
		s := NewState()
		r := last(t, s, keys)
		assert.Equal(t, want, r.Action, keys)
		assert.Equal(t, ModeNormal, s.Mode(), keys)
	}
}

func TestVisualToCommand(t *testing.T) {
	s := NewState()
	feed(t, s, "v:")
	assert.Equal(t, ModeCommand, s.Mode())
	assert.Empty(t, s.CommandLine())
}

func TestVisualUnknownKey(t *testing.T) {
	s := NewState()
	r := last(t, s, "vQ")
	assert.False(t, r.Handled)
	assert.Equal(t, ModeVisual, s.Mode())

	r = last(t, s, "<C-x>")
	assert.False(t, r.Handled)
}

func TestVisualUnknownKeyResetsCount(t *testing.T) {
	tests := []struct {
		name string
		keys string
	}{
		{"plain key", "v3Zj"},
		{"ctrl key", "v4<C-x>j"},
		{"alt key", "v5<A-v>j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			r := last(t, s, tt.keys)
			assert.Equal(t, ActionMoveCursor, r.Action)
			assert.Equal(t, 1, r.Count)
			assert.Equal(t, ModeVisual, s.Mode())
		})
	}
}

func TestModeChangeSequence(t *testing.T) {
	s := NewState()
	var got []string
	s.OnModeChange(func(from, to Mode) {
		got = append(got, from.String()+">"+to.String())
	})

	feed(t, s, "vd2dwi<Esc>")
	assert.Equal(t, []string{
		"normal>visual",
		"visual>normal",
		"normal>operator_pending",
		"operator_pending>normal",
		"normal>insert",
		"insert>normal",
	}, got)
}
