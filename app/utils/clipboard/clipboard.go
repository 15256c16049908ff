package clipboard

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("no clipboard backend available")

// Available reports whether a clipboard can be written to at all
func Available() bool {
	if clipboard.Unsupported {
		return false
	}

	if runtime.GOOS != "linux" {
		return true
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return true
		}
	}

	if os.Getenv("DISPLAY") == "" {
		return false
	}

	for _, tool := range []string{"xclip", "xsel"} {
		if _, err := exec.LookPath(tool); err == nil {
			return true
		}
	}

	return false
}

func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

func Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(text, "\n"), nil
}
