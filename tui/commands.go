package tui

import (
	"fmt"
	"strings"

	"linkpad/app/state"
	"linkpad/tui/components"
	"linkpad/tui/message"
)

func (m *Model) CmdRegistry() components.Commands {
	return components.Commands{
		message.CmdPrompt.Write:      m.writeNote,
		message.CmdPrompt.Quit:       m.shouldQuit,
		message.CmdPrompt.Quit + "!": m.forceQuit,
		message.CmdPrompt.WriteQuit:  m.writeNoteAndQuit,
		"x":                          m.writeNoteAndQuit,

		message.CmdPrompt.New:    m.cmdNew,
		message.CmdPrompt.Dir:    m.cmdDir,
		"cd":                     m.cmdDir,
		message.CmdPrompt.Delete: m.cmdDelete,
		message.CmdPrompt.Reload: m.cmdReload,
		"e":                      m.cmdReload,
		message.CmdPrompt.Filter: m.cmdFilter,
	}
}

// execCommand runs a line typed into the command prompt. Everything
// after the command name is passed on as a single argument so paths
// may contain spaces.
func (m *Model) execCommand(line string) StatusBarMsg {
	if line == "" {
		return StatusBarMsg{}
	}

	m.state.Append(state.NewEntry(state.Command, line))

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	fn, ok := m.CmdRegistry()[name]
	if !ok {
		return errorMsg(fmt.Sprintf(message.StatusBar.UnknownCommand, name))
	}

	if rest == "" {
		return fn()
	}
	return fn(rest)
}

func (m *Model) writeNote(_ ...string) StatusBarMsg {
	return m.save()
}

func (m *Model) shouldQuit(_ ...string) StatusBarMsg {
	return m.quit()
}

func (m *Model) forceQuit(_ ...string) StatusBarMsg {
	m.discardKey = "quit"
	return m.quit()
}

func (m *Model) writeNoteAndQuit(_ ...string) StatusBarMsg {
	if !m.editor.Dirty() && !m.session.IsNewNote {
		return m.quit()
	}

	m.quitAfterSave = true
	return m.save()
}

func (m *Model) cmdNew(_ ...string) StatusBarMsg {
	return m.newNote()
}

// cmdDir switches to the directory given as argument or opens the
// directory prompt without one
func (m *Model) cmdDir(args ...string) StatusBarMsg {
	if len(args) == 0 {
		return m.changeDirectory()
	}
	return m.selectDirectory(args[0])
}

func (m *Model) cmdDelete(_ ...string) StatusBarMsg {
	return m.remove()
}

func (m *Model) cmdReload(_ ...string) StatusBarMsg {
	return m.reload()
}

// cmdFilter filters the notes list by the argument, without one the
// filter is cleared
func (m *Model) cmdFilter(args ...string) StatusBarMsg {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	m.notesList.SetFilter(query)
	m.focusNotesList()

	return StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.NotesLoaded, m.notesList.Len()),
	}
}
