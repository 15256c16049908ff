package app

import (
	"os"
	"path/filepath"
	"strings"

	"linkpad/app/debug"
)

// Runtime switches, set by the command line before the TUI starts.
var (
	Debug     = false
	NoPreview = false
)

func Name() string {
	return "linkpad"
}

// ModuleName is the application name suffixed with the release channel,
// so dev builds never share config or logs with a regular install.
func ModuleName() string {
	moduleName := "linkpad"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		moduleName += "-" + channel
	}

	return moduleName
}

// ConfigDir returns the config directory and creates it if necessary
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		debug.LogErr("could not get user config directory:", err)
		return "", err
	}

	confDir := filepath.Join(configDir, ModuleName())

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			debug.LogErr(err)
			return "", err
		}
	}

	return confDir, nil
}

// ConfigFile returns the path to the config file or, if isMetaInfo
// is set, to the file holding cached per-note meta infos
func ConfigFile(isMetaInfo bool) (string, error) {
	filename := ModuleName()
	if isMetaInfo {
		filename += "_metainfos"
	} else {
		filename += ".conf"
	}

	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, filename), nil
}

// StateFile returns the path to the file holding the prompt histories
func StateFile() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ModuleName()+"_state"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		debug.LogErr(err)
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
