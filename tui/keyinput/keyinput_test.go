package keyinput_test

import (
	"testing"

	"linkpad/tui/keyinput"
	"linkpad/tui/message"
	"linkpad/tui/mode"

	"github.com/stretchr/testify/assert"
)

type component struct{ focused bool }

func (c *component) Focused() bool { return c.focused }

func TestHandleSequences(t *testing.T) {
	list := &component{focused: true}
	editor := &component{}

	var called []string
	action := func(name string) func() message.StatusBarMsg {
		return func() message.StatusBarMsg {
			called = append(called, name)
			return message.StatusBarMsg{Content: name}
		}
	}

	ki := keyinput.New()
	ki.Functions = []keyinput.KeyAction{
		{
			Bindings: keyinput.KeyBindings("j", "down"),
			Cond: []keyinput.KeyCondition{
				{Mode: mode.Normal, Components: []keyinput.FocusedComponent{list}, Action: action("listDown")},
				{Mode: mode.Normal, Components: []keyinput.FocusedComponent{editor}, Action: action("editorDown")},
			},
		},
		{
			Bindings: keyinput.KeyBindings("ctrl+w l"),
			Cond: []keyinput.KeyCondition{
				{Mode: mode.Normal, Action: action("nextColumn")},
			},
		},
		{
			Bindings: keyinput.KeyBindings("ctrl+s"),
			Cond: []keyinput.KeyCondition{
				{Mode: mode.Normal, Action: action("save")},
				{Mode: mode.Insert, Action: action("save")},
			},
		},
	}

	msg, ok := ki.HandleSequences("j")
	assert.True(t, ok)
	assert.Equal(t, "listDown", msg.Content)

	list.focused, editor.focused = false, true
	ki.HandleSequences("down")

	_, ok = ki.HandleSequences("ctrl+w")
	assert.True(t, ok, "the start of a sequence is consumed")
	assert.Equal(t, "ctrl+w", ki.KeySequence)

	ki.HandleSequences("l")
	assert.Empty(t, ki.KeySequence)

	// broken sequence falls back to the single key
	ki.HandleSequences("ctrl+w")
	ki.HandleSequences("j")

	_, ok = ki.HandleSequences("x")
	assert.False(t, ok)

	ki.Mode = mode.Insert
	_, ok = ki.HandleSequences("j")
	assert.False(t, ok, "normal mode bindings are inactive in insert mode")
	ki.HandleSequences("ctrl+s")

	assert.Equal(t, []string{"listDown", "editorDown", "nextColumn", "editorDown", "save"}, called)
}
