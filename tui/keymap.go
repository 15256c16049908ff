package tui

import (
	ki "linkpad/tui/keyinput"
	"linkpad/tui/mode"
)

type c = ki.FocusedComponent
type keyAction = ki.KeyAction
type keyCond = ki.KeyCondition

func (m *Model) KeyInputFn() []ki.KeyAction {
	return []keyAction{
		// FOCUS
		{
			Bindings: ki.KeyBindings("tab", "ctrl+w l", "ctrl+w w"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.focusNextColumn}},
		},
		{
			Bindings: ki.KeyBindings("shift+tab", "ctrl+w h"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.focusPrevColumn}},
		},
		{
			Bindings: ki.KeyBindings("1"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.focusNotesList}},
		},
		{
			Bindings: ki.KeyBindings("2"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.focusEditor}},
		},

		// LINE DOWN
		{
			Bindings: ki.KeyBindings("j", "down"),
			Cond: []keyCond{
				m.listAction(m.notesList.LineDown),
				m.editorAction(m.editor.LineDown),
			},
		},

		// LINE UP
		{
			Bindings: ki.KeyBindings("k", "up"),
			Cond: []keyCond{
				m.listAction(m.notesList.LineUp),
				m.editorAction(m.editor.LineUp),
			},
		},

		// CHARACTER LEFT / RIGHT
		{
			Bindings: ki.KeyBindings("h", "left"),
			Cond:     []keyCond{m.editorAction(m.editor.MoveCharacterLeft)},
		},
		{
			Bindings: ki.KeyBindings("l", "right"),
			Cond:     []keyCond{m.editorAction(m.editor.MoveCharacterRight)},
		},
		{
			Bindings: ki.KeyBindings("0", "home"),
			Cond:     []keyCond{m.editorAction(m.editor.LineStart)},
		},
		{
			Bindings: ki.KeyBindings("$", "end"),
			Cond:     []keyCond{m.editorAction(m.editor.LineEnd)},
		},
		{
			Bindings: ki.KeyBindings("ctrl+u", "pgup"),
			Cond:     []keyCond{m.editorAction(m.editor.PageUp)},
		},
		{
			Bindings: ki.KeyBindings("ctrl+f", "pgdown"),
			Cond:     []keyCond{m.editorAction(m.editor.PageDown)},
		},

		// TOP / BOTTOM
		{
			Bindings: ki.KeyBindings("g g"),
			Cond: []keyCond{
				m.listAction(m.notesList.GoToTop),
				m.editorAction(m.editor.GoToTop),
			},
		},
		{
			Bindings: ki.KeyBindings("G"),
			Cond: []keyCond{
				m.listAction(m.notesList.GoToBottom),
				m.editorAction(m.editor.GoToBottom),
			},
		},

		// OPEN NOTE
		{
			Bindings: ki.KeyBindings("enter", "l"),
			Cond:     []keyCond{m.listAction(m.openSelected)},
		},

		// FILTER NOTES
		{
			Bindings: ki.KeyBindings("/"),
			Cond:     []keyCond{m.listAction(m.startFilter)},
		},

		// CREATE NOTE
		{
			Bindings: ki.KeyBindings("n", "%"),
			Cond:     []keyCond{m.listAction(m.newNote)},
		},

		// DELETE NOTE
		{
			Bindings: ki.KeyBindings("D"),
			Cond: []keyCond{
				m.listAction(m.remove),
				m.editorAction(m.remove),
			},
		},

		// RELOAD
		{
			Bindings: ki.KeyBindings("R"),
			Cond:     []keyCond{m.listAction(m.reload)},
		},

		// INSERT MODE
		{
			Bindings: ki.KeyBindings("i"),
			Cond:     []keyCond{m.editorAction(m.enterInsertMode)},
		},
		{
			Bindings: ki.KeyBindings("a"),
			Cond:     []keyCond{m.editorAction(m.insertAction(m.editor.Append))},
		},
		{
			Bindings: ki.KeyBindings("A"),
			Cond:     []keyCond{m.editorAction(m.insertAction(m.editor.AppendLineEnd))},
		},
		{
			Bindings: ki.KeyBindings("o"),
			Cond:     []keyCond{m.editorAction(m.insertAction(m.editor.InsertLineBelow))},
		},
		{
			Bindings: ki.KeyBindings("esc"),
			Cond: []keyCond{{
				Mode:       mode.Insert,
				Components: []c{m.editor},
				Action:     m.exitInsertMode,
			}},
		},

		// EDITING
		{
			Bindings: ki.KeyBindings("x"),
			Cond:     []keyCond{m.editorAction(m.editor.DeleteChar)},
		},
		{
			Bindings: ki.KeyBindings("u"),
			Cond:     []keyCond{m.editorAction(m.editor.Undo)},
		},
		{
			Bindings: ki.KeyBindings("ctrl+r"),
			Cond:     []keyCond{m.editorAction(m.editor.Redo)},
		},

		// SAVE
		{
			Bindings: ki.KeyBindings("ctrl+s"),
			Cond:     m.anyMode(m.save),
		},

		// LINKS
		{
			Bindings: ki.KeyBindings("ctrl+o"),
			Cond:     m.anyMode(m.openLink),
		},
		{
			Bindings: ki.KeyBindings("ctrl+y"),
			Cond:     m.anyMode(m.yankLink),
		},

		// PROMPTS
		{
			Bindings: ki.KeyBindings("ctrl+d"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.changeDirectory}},
		},
		{
			Bindings: ki.KeyBindings(":"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.commandPrompt}},
		},
	}
}

// listAction binds fn to the notes list in normal mode
func (m *Model) listAction(fn func() StatusBarMsg) keyCond {
	return keyCond{
		Mode:       mode.Normal,
		Components: []c{m.notesList},
		Action:     fn,
	}
}

// editorAction binds fn to the editor in normal mode
func (m *Model) editorAction(fn func() StatusBarMsg) keyCond {
	return keyCond{
		Mode:       mode.Normal,
		Components: []c{m.editor},
		Action:     fn,
	}
}

// anyMode binds fn in normal and insert mode regardless of focus
func (m *Model) anyMode(fn func() StatusBarMsg) []keyCond {
	return []keyCond{
		{Mode: mode.Normal, Action: fn},
		{Mode: mode.Insert, Action: fn},
	}
}
