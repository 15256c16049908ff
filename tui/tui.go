package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bl "github.com/winder/bubblelayout"

	"linkpad/app/config"
	"linkpad/app/debug"
	"linkpad/app/directories"
	"linkpad/app/gateway"
	"linkpad/app/notes"
	"linkpad/app/preview"
	"linkpad/app/session"
	"linkpad/app/state"
	"linkpad/app/utils/clipboard"
	"linkpad/app/watcher"
	"linkpad/tui/components"
	"linkpad/tui/keyinput"
	"linkpad/tui/message"
	"linkpad/tui/mode"
	"linkpad/tui/theme"
)

type StatusBarMsg = message.StatusBarMsg

// Model is the Bubble Tea model for the TUI
type Model struct {
	layout bl.BubbleLayout
	// Current app vim-like mode
	mode         *mode.ModeInstance
	keyInput     *keyinput.Input
	currColFocus int

	conf    *config.Config
	gateway *gateway.Gateway
	session *session.Session
	state   *state.State
	watcher *watcher.Watcher

	notesList *components.NotesList
	editor    *components.Editor
	statusBar *components.StatusBar

	// commands started by key actions, run after the current update
	pending []tea.Cmd

	// note waiting for the delete confirmation
	pendingDelete *notes.Note

	// action that was refused once because of unsaved changes.
	// Repeating it discards the changes.
	discardKey string

	quitAfterSave bool

	// first URLs whose preview was already requested, by note title
	fetched map[string]string
}

// New creates the model. Notes are read from and written to the
// directory gw has persisted.
func New(gw *gateway.Gateway, st *state.State) *Model {
	conf := gw.Config()

	tabWidth := components.DefaultTabWidth
	if v, err := conf.Value(config.Editor, config.TabWidth); err == nil {
		tabWidth = v.GetInt(tabWidth)
	}

	m := &Model{
		layout:       bl.New(),
		mode:         &mode.ModeInstance{Current: mode.Normal},
		keyInput:     keyinput.New(),
		currColFocus: 1,
		conf:         conf,
		gateway:      gw,
		session:      session.New(),
		state:        st,
		notesList:    components.NewNotesList(),
		editor:       components.NewEditor(tabWidth),
		statusBar:    components.NewStatusBar(),
		fetched:      map[string]string{},
	}

	m.keyInput.Functions = m.KeyInputFn()
	m.componentsInit()

	return m
}

func (m *Model) Init() tea.Cmd {
	resizeCmd := func() tea.Msg {
		width, height := theme.GetTerminalSize()
		return m.layout.Resize(width, height-theme.StatusBarHeight)
	}

	if dir, ok := m.gateway.NotesDirectory(); ok {
		return tea.Batch(resizeCmd, m.openDirectory(dir))
	}

	m.notify(StatusBarMsg{Content: message.StatusBar.NoDirectory})
	return tea.Batch(resizeCmd, m.askDirectory(""))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.statusBar.Width = msg.Width

		// Convert WindowSizeMsg to BubbleLayoutMsg.
		return m, func() tea.Msg {
			return m.layout.Resize(
				msg.Width,
				msg.Height-theme.StatusBarHeight,
			)
		}

	case bl.BubbleLayoutMsg:
		m.notesList.Size, _ = msg.Size(m.notesList.Id)
		m.editor.Size, _ = msg.Size(m.editor.Id)
		m.notesList.RefreshSize()
		m.editor.RefreshSize()

	case notesLoadedMsg:
		cmds = append(cmds, m.onNotesLoaded(msg))

	case noteSavedMsg:
		cmds = append(cmds, m.onNoteSaved(msg))

	case noteDeletedMsg:
		m.onNoteDeleted(msg)

	case metadataMsg:
		m.onMetadata(msg)

	case watchEventMsg:
		cmds = append(cmds, m.onWatchEvent(msg))

	case StatusBarMsg:
		m.notify(msg)
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil

	m.syncComponents()

	return m, tea.Batch(cmds...)
}

// View renders the TUI layout as a string
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.notesList.View(),
			m.editor.View(),
		),
		m.statusBar.View(),
	)
}

// Close stops watching the notes directory and persists the prompt
// histories
func (m *Model) Close() {
	m.stopWatcher()

	if err := m.state.Write(); err != nil {
		debug.LogErr("write state:", err)
	}
}

// componentsInit registers components in the layout
// and sets initial focus
func (m *Model) componentsInit() {
	m.notesList.Id = m.layout.Add("width 40")
	m.notesList.SetFocus(true)

	m.editor.Id = m.layout.Add("grow")
	m.editor.SetFocus(false)
}

// syncComponents updates what the components show about each other
func (m *Model) syncComponents() {
	m.notesList.SetActive(m.session.CurrentNoteID)
	m.notesList.SetDirty(m.editor.Dirty())

	m.statusBar.Mode = m.mode.Current
	m.statusBar.SetChanges(m.editor.DiffStat())

	if m.editor.Focused() {
		row, col := m.editor.CursorPos()
		m.statusBar.SetColContent(message.CursorPos, fmt.Sprintf("%d:%d", row, col))
	} else {
		m.statusBar.SetColContent(message.CursorPos, "")
	}
}

// notify shows msg in the status bar
func (m *Model) notify(msg StatusBarMsg) {
	m.statusBar.Update(msg, nil)
}

// queue runs cmd after the current update
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func errorMsg(content string) StatusBarMsg {
	return StatusBarMsg{Content: content, Type: message.Error}
}

///
/// keys
///

// handleKey hands a key to the focused prompt, the filter input, the
// key bindings or the editor, in that order
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.statusBar.Prompting() {
		return m.handlePromptKey(msg)
	}

	if m.mode.Current == mode.Filter {
		return m.handleFilterKey(msg)
	}

	m.keyInput.Mode = m.mode.Current
	statusMsg, handled := m.keyInput.HandleSequences(msg.String())

	if !handled && m.editor.Focused() && m.mode.Current == mode.Insert {
		if m.editor.HandleInsertKey(msg) {
			m.discardKey = ""
		}
		return nil
	}

	if handled {
		m.notify(statusMsg)
	}

	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode.Current = mode.Normal
		m.notify(m.notesList.ClearFilter())
	case tea.KeyEnter:
		m.mode.Current = mode.Normal
		m.notify(m.notesList.ConfirmFilter())
	case tea.KeyUp, tea.KeyCtrlP:
		m.notesList.LineUp()
	case tea.KeyDown, tea.KeyCtrlN:
		m.notesList.LineDown()
	default:
		_, cmd := m.notesList.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	kind := m.statusBar.PromptKind

	switch msg.Type {
	case tea.KeyEsc:
		m.cancelPrompt()
		return nil

	case tea.KeyEnter:
		m.confirmPrompt()
		return nil

	case tea.KeyTab:
		if kind == components.PromptDirectory {
			m.completeDirectory()
		}
		return nil

	case tea.KeyUp, tea.KeyDown:
		if ht, ok := promptHistory(kind); ok {
			entry := m.state.Cycle(ht, msg.Type == tea.KeyUp)
			m.statusBar.SetPromptValue(entry.Content())
		}
		return nil
	}

	var cmd tea.Cmd
	m.statusBar.Prompt, cmd = m.statusBar.Prompt.Update(msg)
	return cmd
}

// promptHistory returns the history the prompt kind cycles through
func promptHistory(kind components.PromptKind) (state.HistoryType, bool) {
	switch kind {
	case components.PromptDirectory:
		return state.Directory, true
	case components.PromptCommand:
		return state.Command, true
	}
	return 0, false
}

// ask focuses the status bar prompt
func (m *Model) ask(kind components.PromptKind, prompt string, value string) {
	if ht, ok := promptHistory(kind); ok {
		m.state.ResetIndex(ht)
	}

	m.mode.Current = mode.Command
	m.queue(m.statusBar.Ask(kind, prompt, value))
}

func (m *Model) cancelPrompt() {
	kind := m.statusBar.PromptKind
	m.statusBar.BlurPrompt()
	m.restoreMode()

	m.pendingDelete = nil
	m.quitAfterSave = false

	if kind == components.PromptDirectory && !m.session.HasDirectory() {
		m.notify(StatusBarMsg{Content: message.StatusBar.NoDirectory})
	}
}

func (m *Model) confirmPrompt() {
	kind := m.statusBar.PromptKind
	value := strings.TrimSpace(m.statusBar.PromptValue())

	m.statusBar.BlurPrompt()
	m.restoreMode()

	var statusMsg StatusBarMsg

	switch kind {
	case components.PromptTitle:
		statusMsg = m.createNote(value)

	case components.PromptDirectory:
		statusMsg = m.selectDirectory(value)

	case components.PromptConfirmDelete:
		statusMsg = m.confirmDelete(value)

	case components.PromptCommand:
		statusMsg = m.execCommand(value)
	}

	m.notify(statusMsg)
}

// restoreMode leaves command mode for the mode of the editor
func (m *Model) restoreMode() {
	if m.editor.Focused() && m.editor.Mode == mode.Insert {
		m.mode.Current = mode.Insert
		return
	}
	m.mode.Current = mode.Normal
}

///
/// notes directory
///

// askDirectory prompts for the notes directory
func (m *Model) askDirectory(value string) tea.Cmd {
	m.ask(components.PromptDirectory, message.StatusBar.DirPrompt, value)
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// changeDirectory opens the directory prompt prefilled with the
// current directory
func (m *Model) changeDirectory() StatusBarMsg {
	value := m.session.NotesDirectory
	if value != "" {
		value += string(filepath.Separator)
	}
	m.ask(components.PromptDirectory, message.StatusBar.DirPrompt, value)
	return StatusBarMsg{}
}

// completeDirectory completes the directory prompt as far as it's
// unambiguous and lists the candidates
func (m *Model) completeDirectory() {
	matches := directories.Complete(m.statusBar.PromptValue())
	if len(matches) == 0 {
		return
	}

	if prefix := directories.CommonPrefix(matches); prefix != "" {
		m.statusBar.SetPromptValue(prefix)
	}

	if len(matches) > 1 {
		names := make([]string, 0, len(matches))
		for _, d := range matches {
			names = append(names, d.Name())
		}
		m.statusBar.SetColContent(message.Info, strings.Join(names, " "))
	}
}

// selectDirectory validates and persists path and loads its notes
func (m *Model) selectDirectory(path string) StatusBarMsg {
	if path == "" {
		if !m.session.HasDirectory() {
			return StatusBarMsg{Content: message.StatusBar.NoDirectory}
		}
		return StatusBarMsg{}
	}

	if !m.mayDiscard("dir:" + path) {
		return errorMsg(message.StatusBar.UnsavedChanges)
	}

	dir, ok := m.gateway.SelectDirectory(path)
	if !ok {
		return errorMsg(fmt.Sprintf(message.StatusBar.InvalidDirectory, path))
	}

	m.state.Append(state.NewEntry(state.Directory, dir))
	m.queue(m.openDirectory(dir))

	return StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.DirectoryChanged, dir),
	}
}

// openDirectory switches the session to dir and starts loading it
func (m *Model) openDirectory(dir string) tea.Cmd {
	m.session.SetDirectory(dir)
	m.editor.Clear()
	m.notesList.SetFilter("")
	m.notesList.SetNotes(nil)
	m.fetched = map[string]string{}

	return tea.Batch(m.loadNotes(), m.startWatcher(dir))
}

func (m *Model) startWatcher(dir string) tea.Cmd {
	m.stopWatcher()

	if !m.conf.Bool(config.General, config.WatchDirectory, true) {
		return nil
	}

	w, err := watcher.New(dir)
	if err != nil {
		debug.LogErr("watch directory:", err)
		return nil
	}

	m.watcher = w
	return waitForChange(w)
}

func (m *Model) stopWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		debug.LogErr("close watcher:", err)
	}
	m.watcher = nil
}

// reload lists the notes of the current directory again
func (m *Model) reload() StatusBarMsg {
	if !m.session.HasDirectory() {
		return errorMsg(message.StatusBar.NoDirectory)
	}
	m.queue(m.loadNotes())
	return StatusBarMsg{}
}

///
/// notes
///

// openSelected loads the note selected in the list into the editor
func (m *Model) openSelected() StatusBarMsg {
	selected, ok := m.notesList.SelectedNote()
	if !ok {
		return errorMsg(message.StatusBar.NoNoteSelected)
	}

	if selected.ID == m.session.CurrentNoteID {
		return m.focusEditor()
	}

	if !m.mayDiscard(fmt.Sprintf("open:%s", selected.Title)) {
		return errorMsg(message.StatusBar.UnsavedChanges)
	}

	note, ok := m.session.Open(selected.ID)
	if !ok {
		return errorMsg(message.StatusBar.NoteNotFound)
	}

	m.editor.Load(note.Content)
	m.editor.Title = note.Title

	return m.focusEditor()
}

// newNote empties the editor for a note that gets its title on the
// first save
func (m *Model) newNote() StatusBarMsg {
	if !m.session.HasDirectory() {
		return errorMsg(message.StatusBar.NoDirectory)
	}

	if !m.mayDiscard("new") {
		return errorMsg(message.StatusBar.UnsavedChanges)
	}

	m.session.StartNewNote()
	m.editor.Clear()
	m.editor.Title = "[new note]"

	m.focusEditor()
	return m.enterInsertMode()
}

// save writes the note in the editor. A new note asks for its title
// first.
func (m *Model) save() StatusBarMsg {
	if !m.session.HasDirectory() {
		return errorMsg(message.StatusBar.NoDirectory)
	}

	if m.session.IsNewNote {
		m.ask(components.PromptTitle, message.StatusBar.TitlePrompt, "")
		return StatusBarMsg{}
	}

	note, ok := m.session.CurrentNote()
	if !ok {
		m.quitAfterSave = false
		return errorMsg(message.StatusBar.NoNoteSelected)
	}

	content := m.editor.Content()
	m.session.Store.Update(note.ID, func(n *notes.Note) {
		n.Content = content
	})

	updated := *note
	updated.Content = content
	m.queue(m.saveNote(updated, false))

	return StatusBarMsg{}
}

// createNote saves the new note in the editor under title
func (m *Model) createNote(title string) StatusBarMsg {
	if title == "" {
		m.quitAfterSave = false
		return errorMsg(message.StatusBar.EmptyTitle)
	}

	if err := notes.ValidateTitle(title); err != nil {
		m.quitAfterSave = false
		return errorMsg(fmt.Sprintf(message.StatusBar.InvalidTitle, title))
	}

	if _, exists := m.session.Store.FindByTitle(title); exists {
		m.quitAfterSave = false
		return errorMsg(fmt.Sprintf(message.StatusBar.NoteExists, title))
	}

	m.queue(m.saveNote(notes.NewNote(title, m.editor.Content()), true))
	return StatusBarMsg{}
}

// remove asks to confirm deleting the current note, or the note
// selected in the list while the list is focused
func (m *Model) remove() StatusBarMsg {
	var target notes.Note

	if m.notesList.Focused() {
		selected, ok := m.notesList.SelectedNote()
		if !ok {
			return errorMsg(message.StatusBar.NoNoteSelected)
		}
		target = selected
	} else {
		current, ok := m.session.CurrentNote()
		if !ok {
			return errorMsg(message.StatusBar.NoNoteSelected)
		}
		target = *current
	}

	m.pendingDelete = &target
	m.ask(
		components.PromptConfirmDelete,
		fmt.Sprintf(message.StatusBar.RemovePrompt, target.Title)+" ",
		"",
	)

	return StatusBarMsg{}
}

func (m *Model) confirmDelete(answer string) StatusBarMsg {
	target := m.pendingDelete
	m.pendingDelete = nil

	if target == nil || strings.ToLower(answer) != message.Response.Yes {
		return StatusBarMsg{}
	}

	m.queue(m.deleteNote(*target))
	return StatusBarMsg{}
}

// mayDiscard reports whether the editor may be overwritten. With
// unsaved changes the same action has to be repeated.
func (m *Model) mayDiscard(key string) bool {
	if !m.editor.Dirty() || m.discardKey == key {
		m.discardKey = ""
		return true
	}

	m.discardKey = key
	return false
}

///
/// links
///

// linkTarget returns the URL under the caret in the editor or the
// first URL of the selected note in the list
func (m *Model) linkTarget() (string, bool) {
	if m.notesList.Focused() {
		selected, ok := m.notesList.SelectedNote()
		if !ok {
			return "", false
		}
		url := gateway.FirstURL(selected)
		return url, url != ""
	}

	seg, ok := m.editor.LinkUnderCaret()
	if !ok {
		return "", false
	}
	return seg.Target(), true
}

// openLink opens the link under the caret with the system's default
// handler
func (m *Model) openLink() StatusBarMsg {
	url, ok := m.linkTarget()
	if !ok {
		return errorMsg(message.StatusBar.NoLink)
	}

	if !m.gateway.OpenExternal(url) {
		return errorMsg(fmt.Sprintf(message.StatusBar.OpenFailed, url))
	}

	return StatusBarMsg{Content: fmt.Sprintf(message.StatusBar.LinkOpened, url)}
}

// yankLink copies the link under the caret to the clipboard
func (m *Model) yankLink() StatusBarMsg {
	url, ok := m.linkTarget()
	if !ok {
		return errorMsg(message.StatusBar.NoLink)
	}

	if err := clipboard.Write(url); err != nil {
		debug.LogErr("copy link:", err)
		return errorMsg(message.StatusBar.CopyFailed)
	}

	return StatusBarMsg{Content: fmt.Sprintf(message.StatusBar.LinkCopied, url)}
}

///
/// completions
///

func (m *Model) onNotesLoaded(msg notesLoadedMsg) tea.Cmd {
	if msg.dir != m.session.NotesDirectory ||
		!m.session.ApplyListing(msg.token, msg.notes) {

		debug.LogDebug("discarding stale listing of", msg.dir)
		return nil
	}

	list := m.session.Store.All()
	m.notesList.SetNotes(list)

	if note, ok := m.session.CurrentNote(); ok {
		m.editor.Title = note.Title
		m.notesList.SelectByID(note.ID)
	}

	m.statusBar.SetColContent(
		message.Info,
		fmt.Sprintf(message.StatusBar.NotesLoaded, len(list)),
	)

	return m.fetchPreviews(list)
}

// fetchPreviews requests the link preview of every note that shows
// its own title and starts with a link. Each URL is requested once
// per note and directory.
func (m *Model) fetchPreviews(list []notes.Note) tea.Cmd {
	if !m.gateway.PreviewEnabled() {
		return nil
	}

	var cmds []tea.Cmd

	for _, note := range list {
		if note.DisplayTitle != "" {
			continue
		}

		url := gateway.FirstURL(note)
		if url == "" || m.fetched[note.Title] == url {
			continue
		}

		m.fetched[note.Title] = url
		cmds = append(cmds, m.fetchMetadata(note.Title, url))
	}

	return tea.Batch(cmds...)
}

func (m *Model) onNoteSaved(msg noteSavedMsg) tea.Cmd {
	if msg.dir != m.session.NotesDirectory || !m.session.IsLatestSave(msg.token) {
		debug.LogDebug("discarding stale save of", msg.note.Title)
		return nil
	}

	if !msg.ok {
		m.quitAfterSave = false
		if msg.isNew {
			m.notify(errorMsg(fmt.Sprintf(message.StatusBar.CreateFailed, msg.note.Title)))
		} else {
			m.notify(errorMsg(message.StatusBar.SaveFailed))
		}
		return nil
	}

	m.editor.SetSaved(msg.note.Content)

	if msg.isNew {
		m.session.CommitNewNote(msg.note.Title)
		m.editor.Title = msg.note.Title
	}

	m.notify(StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.NoteSaved, msg.note.Title, len(msg.note.Content)),
	})

	if m.quitAfterSave {
		return tea.Quit
	}

	return m.loadNotes()
}

func (m *Model) onNoteDeleted(msg noteDeletedMsg) {
	if msg.dir != m.session.NotesDirectory {
		return
	}

	if !msg.ok {
		m.notify(errorMsg(message.StatusBar.DeleteFailed))
		return
	}

	if note, ok := m.session.Store.FindByTitle(msg.note.Title); ok {
		if note.ID == m.session.CurrentNoteID {
			m.session.RemoveCurrent()
			m.editor.Clear()
		} else {
			m.session.Store.Remove(note.ID)
		}
	}

	delete(m.fetched, msg.note.Title)
	m.notesList.SetNotes(m.session.Store.All())

	m.notify(StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.NoteDeleted, msg.note.Title),
	})
	m.statusBar.SetColContent(
		message.Info,
		fmt.Sprintf(message.StatusBar.NotesLoaded, m.session.Store.Len()),
	)
}

func (m *Model) onMetadata(msg metadataMsg) {
	if msg.dir != m.session.NotesDirectory {
		return
	}

	note, ok := m.session.Store.FindByTitle(msg.title)
	if !ok || gateway.FirstURL(*note) != msg.url {
		return
	}

	title := preview.DisplayTitle(msg.url, msg.meta)
	if title == "" {
		return
	}

	m.session.Store.Update(note.ID, func(n *notes.Note) {
		n.DisplayTitle = title
	})

	if updated, ok := m.session.Store.FindByID(note.ID); ok {
		m.gateway.CacheDisplayTitle(msg.dir, *updated, msg.url, title)
	}

	m.notesList.SetNotes(m.session.Store.All())
}

// onWatchEvent reloads the notes and keeps reading the watcher. Events
// of a replaced watcher are dropped since its successor already has a
// reader.
func (m *Model) onWatchEvent(msg watchEventMsg) tea.Cmd {
	if m.watcher == nil || msg.w != m.watcher ||
		msg.event.Dir != m.session.NotesDirectory {
		return nil
	}

	debug.LogDebug(message.StatusBar.ExternalChange, msg.event.Name)

	return tea.Batch(m.loadNotes(), waitForChange(m.watcher))
}

///
/// Keyboard shortcut delegations
///

// focusColumn selects and higlights a column with index `index`
// (1=notesList, 2=editor)
func (m *Model) focusColumn(index int) StatusBarMsg {
	if index != 2 && m.editor.Mode == mode.Insert {
		m.exitInsertMode()
	}

	m.notesList.SetFocus(index == 1)
	m.editor.SetFocus(index == 2)
	m.currColFocus = index

	return StatusBarMsg{}
}

// focusNotesList is a helper function
// for selecting the notes list
func (m *Model) focusNotesList() StatusBarMsg {
	return m.focusColumn(1)
}

// focusEditor is a helper function
// for selecting the editor
func (m *Model) focusEditor() StatusBarMsg {
	return m.focusColumn(2)
}

// focusNextColumn selects and highlights the respectively next of the
// currently selected column.
// Selects the first if the currently selected column is the last column...
func (m *Model) focusNextColumn() StatusBarMsg {
	index := m.currColFocus + 1
	if index > 2 {
		index = 1
	}
	return m.focusColumn(index)
}

// focusPrevColumn selects and highlights the respectively previous
// column
func (m *Model) focusPrevColumn() StatusBarMsg {
	index := m.currColFocus - 1
	if index < 1 {
		index = 2
	}
	return m.focusColumn(index)
}

func (m *Model) enterInsertMode() StatusBarMsg {
	m.mode.Current = mode.Insert
	return m.editor.EnterInsertMode()
}

func (m *Model) exitInsertMode() StatusBarMsg {
	m.mode.Current = mode.Normal
	return m.editor.ExitInsertMode()
}

// insertAction wraps an editor function that enters insert mode
func (m *Model) insertAction(fn func() StatusBarMsg) func() StatusBarMsg {
	return func() StatusBarMsg {
		m.mode.Current = mode.Insert
		return fn()
	}
}

func (m *Model) startFilter() StatusBarMsg {
	m.mode.Current = mode.Filter
	return m.notesList.StartFilter()
}

func (m *Model) commandPrompt() StatusBarMsg {
	m.ask(components.PromptCommand, message.StatusBar.CmdPrompt, "")
	return StatusBarMsg{}
}

// quit leaves the app unless there are unsaved changes
func (m *Model) quit() StatusBarMsg {
	if !m.mayDiscard("quit") {
		return errorMsg(message.StatusBar.UnsavedChanges)
	}
	m.queue(tea.Quit)
	return StatusBarMsg{}
}
