package gateway

import (
	"os/exec"
	"runtime"
)

// OpenCommand returns the command that opens url on goos
func OpenCommand(goos string, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func openURL(url string) error {
	name, args := OpenCommand(runtime.GOOS, url)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	// reap the process without blocking the caller
	go cmd.Wait()

	return nil
}
