package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortcutAction(t *testing.T) {
	tests := []struct {
		ctrl bool
		key  string
		want Action
	}{
		{true, "v", ActionPaste},
		{true, "V", ActionPaste},
		{true, "z", ActionUndo},
		{true, "y", ActionRedo},
		{true, "e", ActionExport},
		{true, "x", ActionNone},
		{true, "", ActionNone},
		{false, "z", ActionNone},
		{false, "v", ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShortcutAction(tt.ctrl, tt.key), "ctrl=%v key=%q", tt.ctrl, tt.key)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "paste", ActionPaste.String())
	assert.Equal(t, "undo", ActionUndo.String())
	assert.Equal(t, "redo", ActionRedo.String())
	assert.Equal(t, "export", ActionExport.String())
	assert.Equal(t, "none", ActionNone.String())
}
