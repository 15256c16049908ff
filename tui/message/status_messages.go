package message

var Response = struct {
	Yes, No string
}{
	Yes: "y",
	No:  "n",
}

// CmdPrompt holds the commands understood by the command prompt
var CmdPrompt = struct {
	Write, Quit, WriteQuit, New, Dir, Delete, Reload, Filter string
}{
	Write:     "w",
	Quit:      "q",
	WriteQuit: "wq",
	New:       "new",
	Dir:       "dir",
	Delete:    "delete",
	Reload:    "reload",
	Filter:    "filter",
}

var StatusBar = struct {
	RemovePrompt, TitlePrompt, DirPrompt, CmdPrompt,
	NoteExists, NoteSaved, NoteCreated, NoteDeleted,
	SaveFailed, CreateFailed, DeleteFailed,
	NoNoteSelected, NoteNotFound, EmptyTitle, InvalidTitle,
	NoDirectory, InvalidDirectory, DirectoryChanged, NotesLoaded,
	NoLink, LinkOpened, OpenFailed, LinkCopied, CopyFailed,
	UnknownCommand, NothingToUndo, NothingToRedo, UnsavedChanges,
	ExternalChange string
}{
	RemovePrompt:     "Delete `%s`? This can't be undone. [y(es),n(o)]",
	TitlePrompt:      "Title: ",
	DirPrompt:        "Notes directory: ",
	CmdPrompt:        ":",
	NoteExists:       "A note named `%s` already exists",
	NoteSaved:        "\"%s\" %dB written",
	NoteCreated:      "Note `%s` created",
	NoteDeleted:      "Note `%s` deleted",
	SaveFailed:       "Failed to save note",
	CreateFailed:     "Failed to create note `%s`",
	DeleteFailed:     "Failed to delete note",
	NoNoteSelected:   "No note selected",
	NoteNotFound:     "Selected note not found",
	EmptyTitle:       "Please enter a title for the note",
	InvalidTitle:     "Invalid title: %s",
	NoDirectory:      "No notes directory selected",
	InvalidDirectory: "Not a directory: %s",
	DirectoryChanged: "Notes directory: %s",
	NotesLoaded:      "%d notes",
	NoLink:           "No link under the cursor",
	LinkOpened:       "Opened %s",
	OpenFailed:       "Could not open %s",
	LinkCopied:       "Copied %s",
	CopyFailed:       "Could not copy to the clipboard",
	UnknownCommand:   "Not an editor command: %s",
	NothingToUndo:    "Already at oldest change",
	NothingToRedo:    "Already at newest change",
	UnsavedChanges:   "No write since last change (add ! to override)",
	ExternalChange:   "Notes changed on disk, reloading",
}
