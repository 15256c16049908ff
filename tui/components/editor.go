package components

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"linkpad/app/annotate"
	"linkpad/app/utils"
	"linkpad/tui/message"
	"linkpad/tui/mode"
	"linkpad/tui/theme"
)

const DefaultTabWidth = 4

// glyph is a single displayed rune of the document
type glyph struct {
	r      rune
	kind   annotate.Kind
	offset int
	width  int
}

// visualLine is a row of the editor after wrapping
type visualLine struct {
	glyphs []glyph

	// caret offsets of the first glyph and behind the last one
	start int
	end   int

	// hard lines end with a newline or the end of the document,
	// the others are wrapped
	hard bool
}

// Editor displays and edits the annotated document of one note.
// The caret is an absolute rune offset into the document's projection.
type Editor struct {
	Component

	// Title is shown in the header of the editor column
	Title string

	// Mode is the vim-like mode the editor is in
	Mode mode.Mode

	doc   annotate.Document
	caret int

	// column the caret keeps while moving vertically, -1 if unset
	goalCol int

	// stored form and projection of the document as it was loaded
	// or last saved
	saved     string
	savedText string

	history  History
	tabWidth int
	lines    []visualLine
	styles   editorStyles
}

type editorStyles struct {
	base,
	link,
	mail,
	dash,
	embed,
	header,
	cursor lipgloss.Style
}

func newEditorStyles() editorStyles {
	var s editorStyles

	s.base = lipgloss.NewStyle().Foreground(theme.ColourFg)
	s.link = s.base.Foreground(theme.ColourLink).Underline(true)
	s.mail = s.base.Foreground(theme.ColourMail).Underline(true)
	s.dash = s.base.Foreground(theme.ColourDash)
	s.embed = s.base.Foreground(theme.ColourEmbed).Italic(true)
	s.header = s.base.Bold(true)
	s.cursor = lipgloss.NewStyle().Reverse(true)

	return s
}

func (s editorStyles) kind(k annotate.Kind) lipgloss.Style {
	switch k {
	case annotate.Link:
		return s.link
	case annotate.Mail:
		return s.mail
	case annotate.Dash:
		return s.dash
	case annotate.Embed:
		return s.embed
	}
	return s.base
}

// NewEditor creates an empty editor. Tabs take tabWidth cells.
func NewEditor(tabWidth int) *Editor {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	e := &Editor{
		Mode:     mode.Normal,
		goalCol:  -1,
		history:  NewHistory(),
		tabWidth: tabWidth,
		styles:   newEditorStyles(),
	}
	e.Load("")

	return e
}

// Init initialises the Model on program load.
// It partly implements the tea.Model interface.
func (e *Editor) Init() tea.Cmd {
	return nil
}

func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.Size.Width = msg.Width
		e.Size.Height = msg.Height
		e.RefreshSize()
	}
	return e, nil
}

// RefreshSize adapts the viewport and the wrapped lines to the size
// of the column
func (e *Editor) RefreshSize() {
	e.resizeViewport()
	e.relayout()
}

func (e *Editor) View() string {
	if !e.Ready {
		return "\n  Initializing..."
	}

	width, _ := e.innerSize()

	title := e.Title
	if e.Dirty() {
		title += " [+]"
	}
	header := e.styles.header.Render(utils.TruncateText(title, width))

	e.viewport.SetContent(e.render())
	e.scrollTo(e.caretLine())

	return theme.BaseColumnLayout(e.Size, e.Focused()).
		Render(header + "\n" + e.viewport.View())
}

///
/// document
///

// Load replaces the document with the stored content of a note.
// YouTube links are embedded and raw runs annotated.
func (e *Editor) Load(content string) {
	doc := annotate.EmbedYouTube(annotate.Parse(content))
	doc, _ = annotate.Reconcile(doc, annotate.NoSelection)

	e.doc = doc
	e.caret = 0
	e.goalCol = -1
	e.saved = doc.HTML()
	e.savedText = doc.Text()
	e.history.Reset()
	e.relayout()

	if e.Ready {
		e.viewport.SetYOffset(0)
	}
}

// Clear empties the editor
func (e *Editor) Clear() {
	e.Title = ""
	e.Load("")
}

// Document returns the document being edited
func (e *Editor) Document() annotate.Document {
	return e.doc
}

// Content returns the document in its stored form
func (e *Editor) Content() string {
	return e.doc.HTML()
}

// Dirty reports whether the document differs from what was loaded
// or last saved
func (e *Editor) Dirty() bool {
	return e.doc.HTML() != e.saved
}

// SetSaved makes content, in its stored form, the reference for
// Dirty. Edits made while a save was running stay dirty.
func (e *Editor) SetSaved(content string) {
	e.saved = content
	e.savedText = annotate.Parse(content).Text()
}

// DiffStat returns the number of runes added and removed since the
// document was loaded or last saved
func (e *Editor) DiffStat() (int, int) {
	return utils.DiffStat(e.savedText, e.doc.Text())
}

// Caret returns the absolute rune offset of the caret
func (e *Editor) Caret() int {
	return e.caret
}

// SetCaret moves the caret, clamped to the document
func (e *Editor) SetCaret(offset int) {
	e.caret = utils.Clamp(offset, 0, e.doc.Len())
	e.goalCol = -1
}

// CursorPos returns the 1-based row and column of the caret
// on screen
func (e *Editor) CursorPos() (int, int) {
	line := e.caretLine()
	return line + 1, e.caretCol(line) + 1
}

// LinkUnderCaret returns the link, mail link or embed the caret is on
func (e *Editor) LinkUnderCaret() (annotate.Segment, bool) {
	return annotate.LinkAt(e.doc, e.caret)
}

///
/// modes
///

// EnterInsertMode starts recording a history entry for the upcoming
// edits
func (e *Editor) EnterInsertMode() message.StatusBarMsg {
	e.Mode = mode.Insert
	e.history.Begin(e.doc.HTML(), e.caret)
	return message.StatusBarMsg{}
}

// Append enters insert mode behind the caret
func (e *Editor) Append() message.StatusBarMsg {
	if e.caret < e.doc.Len() && e.runeAt(e.caret) != '\n' {
		e.caret++
	}
	return e.EnterInsertMode()
}

// AppendLineEnd enters insert mode at the end of the line
func (e *Editor) AppendLineEnd() message.StatusBarMsg {
	e.LineEnd()
	return e.EnterInsertMode()
}

// InsertLineBelow opens a new line below the caret's line
func (e *Editor) InsertLineBelow() message.StatusBarMsg {
	e.LineEnd()
	e.EnterInsertMode()
	e.InsertText("\n")
	return message.StatusBarMsg{}
}

// ExitInsertMode commits the edits made in insert mode as one history
// entry
func (e *Editor) ExitInsertMode() message.StatusBarMsg {
	e.Mode = mode.Normal
	e.history.Commit(e.doc.HTML(), e.caret)
	return message.StatusBarMsg{}
}

///
/// editing
///

// InsertText inserts text at the caret. A typed space or newline
// annotates the word in front of it.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}

	e.doc = e.doc.Insert(e.caret, text)
	e.caret += utf8.RuneCountInString(text)
	e.goalCol = -1

	if text == " " || text == "\n" {
		doc, pos, ok := annotate.LinkifyLastWord(e.doc, e.doc.PositionAt(e.caret))
		if ok {
			e.doc = doc
			e.caret = doc.OffsetOf(pos)
		}
	}

	e.relayout()
}

// Paste inserts text at the caret and annotates the whole document
func (e *Editor) Paste(text string) {
	if text == "" {
		return
	}

	doc := annotate.EmbedYouTube(e.doc.Insert(e.caret, text))
	caret := e.caret + utf8.RuneCountInString(text)

	doc, pos := annotate.Reconcile(doc, doc.PositionAt(caret))
	if offset := doc.OffsetOf(pos); offset >= 0 {
		caret = offset
	}

	e.doc = doc
	e.caret = utils.Clamp(caret, 0, doc.Len())
	e.goalCol = -1
	e.relayout()
}

// Backspace deletes the rune in front of the caret
func (e *Editor) Backspace() {
	if e.caret == 0 {
		return
	}

	e.doc = e.doc.Delete(e.caret-1, e.caret)
	e.caret--
	e.goalCol = -1
	e.relayout()
}

// DeleteForward deletes the rune under the caret
func (e *Editor) DeleteForward() {
	if e.caret >= e.doc.Len() {
		return
	}

	e.doc = e.doc.Delete(e.caret, e.caret+1)
	e.goalCol = -1
	e.relayout()
}

// DeleteChar deletes the rune under the caret in normal mode as an
// undoable change of its own
func (e *Editor) DeleteChar() message.StatusBarMsg {
	e.history.Begin(e.doc.HTML(), e.caret)
	e.DeleteForward()
	e.history.Commit(e.doc.HTML(), e.caret)
	return message.StatusBarMsg{}
}

// Undo reverts the last change
func (e *Editor) Undo() message.StatusBarMsg {
	content, caret, ok := e.history.Undo(e.doc.HTML())
	if !ok {
		return message.StatusBarMsg{Content: message.StatusBar.NothingToUndo}
	}

	e.restore(content, caret)
	return message.StatusBarMsg{}
}

// Redo applies the last undone change again
func (e *Editor) Redo() message.StatusBarMsg {
	content, caret, ok := e.history.Redo(e.doc.HTML())
	if !ok {
		return message.StatusBarMsg{Content: message.StatusBar.NothingToRedo}
	}

	e.restore(content, caret)
	return message.StatusBarMsg{}
}

func (e *Editor) restore(content string, caret int) {
	e.doc = annotate.Parse(content)
	e.caret = utils.Clamp(caret, 0, e.doc.Len())
	e.goalCol = -1
	e.relayout()
}

// HandleInsertKey applies a key typed in insert mode to the document.
// It reports whether the key was used.
func (e *Editor) HandleInsertKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			e.Paste(string(msg.Runes))
		} else {
			e.InsertText(string(msg.Runes))
		}
	case tea.KeySpace:
		e.InsertText(" ")
	case tea.KeyEnter:
		e.InsertText("\n")
	case tea.KeyTab:
		e.InsertText("\t")
	case tea.KeyBackspace:
		e.Backspace()
	case tea.KeyDelete:
		e.DeleteForward()
	case tea.KeyLeft:
		e.MoveCharacterLeft()
	case tea.KeyRight:
		e.MoveCharacterRight()
	case tea.KeyUp:
		e.LineUp()
	case tea.KeyDown:
		e.LineDown()
	case tea.KeyHome:
		e.LineStart()
	case tea.KeyEnd:
		e.LineEnd()
	case tea.KeyPgUp:
		e.PageUp()
	case tea.KeyPgDown:
		e.PageDown()
	default:
		return false
	}
	return true
}

///
/// movement
///

// MoveCharacterLeft moves the caret one rune to the left
func (e *Editor) MoveCharacterLeft() message.StatusBarMsg {
	e.SetCaret(e.caret - 1)
	return message.StatusBarMsg{}
}

// MoveCharacterRight moves the caret one rune to the right
func (e *Editor) MoveCharacterRight() message.StatusBarMsg {
	e.SetCaret(e.caret + 1)
	return message.StatusBarMsg{}
}

// LineUp moves the caret one visual line up
func (e *Editor) LineUp() message.StatusBarMsg {
	e.moveVertical(-1)
	return message.StatusBarMsg{}
}

// LineDown moves the caret one visual line down
func (e *Editor) LineDown() message.StatusBarMsg {
	e.moveVertical(1)
	return message.StatusBarMsg{}
}

// PageUp moves the caret up by the height of the viewport
func (e *Editor) PageUp() message.StatusBarMsg {
	e.moveVertical(-e.pageSize())
	return message.StatusBarMsg{}
}

// PageDown moves the caret down by the height of the viewport
func (e *Editor) PageDown() message.StatusBarMsg {
	e.moveVertical(e.pageSize())
	return message.StatusBarMsg{}
}

// LineStart moves the caret to the start of its visual line
func (e *Editor) LineStart() message.StatusBarMsg {
	e.SetCaret(e.lines[e.caretLine()].start)
	return message.StatusBarMsg{}
}

// LineEnd moves the caret to the end of its visual line
func (e *Editor) LineEnd() message.StatusBarMsg {
	l := e.lines[e.caretLine()]
	if l.hard || len(l.glyphs) == 0 {
		e.SetCaret(l.end)
	} else {
		e.SetCaret(l.glyphs[len(l.glyphs)-1].offset)
	}
	return message.StatusBarMsg{}
}

// GoToTop moves the caret to the start of the document
func (e *Editor) GoToTop() message.StatusBarMsg {
	e.SetCaret(0)
	return message.StatusBarMsg{}
}

// GoToBottom moves the caret to the end of the document
func (e *Editor) GoToBottom() message.StatusBarMsg {
	e.SetCaret(e.doc.Len())
	return message.StatusBarMsg{}
}

func (e *Editor) pageSize() int {
	if !e.Ready {
		return 1
	}
	return max(e.viewport.Height-1, 1)
}

func (e *Editor) moveVertical(delta int) {
	line := e.caretLine()
	if e.goalCol < 0 {
		e.goalCol = e.caretCol(line)
	}

	target := utils.Clamp(line+delta, 0, len(e.lines)-1)
	e.caret = e.lines[target].offsetAtCol(e.goalCol)
}

func (e *Editor) runeAt(offset int) rune {
	start := 0
	for _, seg := range e.doc.Segments {
		end := start + seg.Len()
		if offset < end {
			return []rune(seg.Text)[offset-start]
		}
		start = end
	}
	return 0
}

///
/// layout
///

// relayout wraps the document into visual lines for the current width
func (e *Editor) relayout() {
	width, _ := e.innerSize()
	// keep a cell free for the caret behind the last glyph
	e.lines = layout(e.doc, max(width-1, 1), e.tabWidth)
}

func layout(doc annotate.Document, width int, tabWidth int) []visualLine {
	var lines []visualLine

	cur := visualLine{}
	curWidth := 0
	offset := 0

	for _, seg := range doc.Segments {
		for _, r := range seg.Text {
			if r == '\n' {
				cur.end = offset
				cur.hard = true
				lines = append(lines, cur)

				offset++
				cur = visualLine{start: offset}
				curWidth = 0
				continue
			}

			w := cellWidth(r, tabWidth)
			if curWidth+w > width && len(cur.glyphs) > 0 {
				cur.end = offset
				lines = append(lines, cur)

				cur = visualLine{start: offset}
				curWidth = 0
			}

			cur.glyphs = append(cur.glyphs, glyph{
				r:      r,
				kind:   seg.Kind,
				offset: offset,
				width:  w,
			})
			curWidth += w
			offset++
		}
	}

	cur.end = offset
	cur.hard = true
	return append(lines, cur)
}

func cellWidth(r rune, tabWidth int) int {
	if r == '\t' {
		return tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}

// offsetAtCol returns the caret offset closest to the cell column col
func (l visualLine) offsetAtCol(col int) int {
	w := 0
	for _, g := range l.glyphs {
		if w+g.width > col {
			return g.offset
		}
		w += g.width
	}

	// the end of a wrapped line is the start of the next one
	if !l.hard && len(l.glyphs) > 0 {
		return l.glyphs[len(l.glyphs)-1].offset
	}
	return l.end
}

// caretLine returns the index of the visual line holding the caret
func (e *Editor) caretLine() int {
	for i, l := range e.lines {
		if e.caret >= l.start && e.caret < l.end {
			return i
		}
		if e.caret == l.end && l.hard {
			return i
		}
	}
	return max(len(e.lines)-1, 0)
}

// caretCol returns the cell column of the caret on line
func (e *Editor) caretCol(line int) int {
	col := 0
	for _, g := range e.lines[line].glyphs {
		if g.offset >= e.caret {
			break
		}
		col += g.width
	}
	return col
}

// render styles all visual lines. Runs of glyphs sharing a style are
// rendered together.
func (e *Editor) render() string {
	caretLine := e.caretLine()
	showCaret := e.Focused()

	rows := make([]string, 0, len(e.lines))

	for i, l := range e.lines {
		var (
			row  strings.Builder
			run  strings.Builder
			kind annotate.Kind
		)

		flush := func() {
			if run.Len() > 0 {
				row.WriteString(e.styles.kind(kind).Render(run.String()))
				run.Reset()
			}
		}

		for _, g := range l.glyphs {
			text := string(g.r)
			if g.r == '\t' {
				text = strings.Repeat(" ", g.width)
			}

			if showCaret && i == caretLine && g.offset == e.caret {
				flush()
				row.WriteString(e.styles.cursor.Inherit(e.styles.kind(g.kind)).Render(text))
				continue
			}

			if g.kind != kind {
				flush()
				kind = g.kind
			}
			run.WriteString(text)
		}
		flush()

		if showCaret && i == caretLine && e.caret == l.end {
			row.WriteString(e.styles.cursor.Render(" "))
		}

		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}
