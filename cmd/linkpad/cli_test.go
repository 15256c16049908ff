package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"linkpad/app/config"
)

// setupEnv points the config directory to a temporary one
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CHANNEL", "")
	t.Setenv(config.EnvNotesDir, "")
}

// run executes the CLI with args and stdin, returning its output
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newCLIApp(strings.NewReader(stdin), &out).Run(append([]string{"linkpad"}, args...))
	return out.String(), err
}

func writeNote(t *testing.T, dir, name, content string, modTime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("failed to set mod time: %v", err)
	}
}

func TestAnnotateCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "see https://example.com or mail me@example.com\n", "annotate")
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	want := `see <a href="https://example.com" class="external-link">https://example.com</a>` +
		` or mail <a href="mailto:me@example.com" class="external-link">me@example.com</a>`
	if !strings.HasPrefix(out, want) {
		t.Errorf("output = %q, want prefix %q", out, want)
	}
}

func TestAnnotateCommandDash(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "one--two", "annotate")
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	want := "one<br><br><span class=\"dash\">--</span>two\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestAnnotateCommandLinks(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "a https://a.example b https://b.example a https://a.example", "annotate", "--links")
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	want := "https://a.example\nhttps://b.example\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListCommand(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	now := time.Now()
	writeNote(t, dir, "older.txt", "old", now.Add(-time.Hour))
	writeNote(t, dir, "newer.txt", "new", now)
	writeNote(t, dir, ".hidden.txt", "hidden", now)
	writeNote(t, dir, "image.png", "", now)

	out, err := run(t, "", "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 notes, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "1 ") || !strings.HasSuffix(lines[0], "newer") {
		t.Errorf("first line = %q, want note 1 `newer`", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "2 ") || !strings.HasSuffix(lines[1], "older") {
		t.Errorf("second line = %q, want note 2 `older`", lines[1])
	}
}

func TestListCommandWithoutDirectory(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "", "list"); err == nil {
		t.Error("expected an error without a notes directory")
	}
}

func TestDirCommand(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	out, err := run(t, "", "dir", dir)
	if err != nil {
		t.Fatalf("dir failed: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("dir printed %q, want %q", out, dir)
	}

	// the directory is remembered
	out, err = run(t, "", "dir")
	if err != nil {
		t.Fatalf("dir failed: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("persisted dir = %q, want %q", out, dir)
	}

	out, err = run(t, "", "dir", "--recent")
	if err != nil {
		t.Fatalf("dir --recent failed: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("recent dirs = %q, want %q", out, dir)
	}
}

func TestDirCommandRejectsFile(t *testing.T) {
	setupEnv(t)
	file := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "", "dir", file); err == nil {
		t.Error("expected an error for a file")
	}
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "linkpad dev\n" {
		t.Errorf("version = %q", out)
	}
}
