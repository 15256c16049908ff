package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"linkpad/app"
	"linkpad/app/debug"

	"gopkg.in/ini.v1"
)

//go:embed default.conf
var defaultConf []byte

// EnvNotesDir overrides the configured notes directory when set
const EnvNotesDir = "LINKPAD_NOTES_DIR"

type Section int

const (
	General Section = iota
	Preview
	Editor
)

var sections = map[Section]string{
	General: "General",
	Preview: "Preview",
	Editor:  "Editor",
}

// String returns the string representation of a Section
func (s Section) String() string {
	return sections[s]
}

type Option int

const (
	NotesDirectory Option = iota
	WatchDirectory
	FetchMetadata
	Timeout
	UserAgent
	TabWidth
	DisplayTitle
	SourceURL
)

// Map of Option enum values to their names as used in the ini files
var options = map[Option]string{
	NotesDirectory: "NotesDirectory",
	WatchDirectory: "WatchDirectory",
	FetchMetadata:  "FetchMetadata",
	Timeout:        "Timeout",
	UserAgent:      "UserAgent",
	TabWidth:       "TabWidth",
	DisplayTitle:   "DisplayTitle",
	SourceURL:      "SourceURL",
}

// String returns the string representation of an Option
func (o Option) String() string {
	return options[o]
}

// Value represents an entry in one of the config files
type Value struct {
	Value string
}

func (v Value) GetBool() bool {
	return v.Value == "true"
}

func (v Value) GetInt(fallback int) int {
	i, err := strconv.Atoi(v.Value)
	if err != nil {
		return fallback
	}
	return i
}

func (v Value) GetDuration(fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.Value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Config holds all config data
type Config struct {
	// path to the user config file
	filePath string

	// path to the meta data file
	metaFilePath string

	// parsed default config
	file *ini.File

	// parsed user config file
	userFile *ini.File

	// parsed meta data file
	metaFile *ini.File

	// timer used to debounce saving meta changes
	flushTimer *time.Timer

	// guards metaFile and flushTimer
	flushMu sync.Mutex

	// delay before flushing meta changes to disk
	flushDelay time.Duration
}

func (c *Config) File() string { return c.filePath }

// New loads the config files from the user config directory and
// creates them if they don't exist yet
func New() (*Config, error) {
	filePath, err := app.ConfigFile(false)
	if err != nil {
		return nil, err
	}

	metaFilePath, err := app.ConfigFile(true)
	if err != nil {
		return nil, err
	}

	return Open(filePath, metaFilePath)
}

// Open loads the user config at filePath and the meta infos at
// metaFilePath on top of the embedded defaults
func Open(filePath string, metaFilePath string) (*Config, error) {
	ini.PrettyFormat = false
	ini.PrettyEqual = true

	for _, path := range []string{filePath, metaFilePath} {
		if err := ensureFile(path); err != nil {
			debug.LogErr(err)
			return nil, err
		}
	}

	conf, err := ini.Load(defaultConf)
	if err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	userConf, err := ini.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	metaConf, err := ini.Load(metaFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta infos file: %w", err)
	}

	return &Config{
		filePath:     filePath,
		metaFilePath: metaFilePath,
		file:         conf,
		userFile:     userConf,
		metaFile:     metaConf,
		flushDelay:   400 * time.Millisecond,
	}, nil
}

// Reload refreshes the user configuration in memory
func (c *Config) Reload() error {
	conf, err := ini.Load(c.filePath)
	if err != nil {
		debug.LogErr("failed to read config file:", err)
		return err
	}

	c.userFile = conf
	return nil
}

// Value retrieves the value of an option in a given section.
// User values take precedence over the defaults.
func (c *Config) Value(section Section, option Option) (Value, error) {
	if sect, err := c.userFile.GetSection(section.String()); err == nil {
		if opt := sect.Key(option.String()); opt.String() != "" {
			return Value{opt.String()}, nil
		}
	}

	sect, err := c.file.GetSection(section.String())
	if err != nil {
		return Value{}, fmt.Errorf("no section: %s", section.String())
	}

	if opt := sect.Key(option.String()); opt.String() != "" {
		return Value{opt.String()}, nil
	}

	return Value{}, fmt.Errorf(
		"couldn't find config option `%s` in section `%s`",
		option.String(),
		section.String(),
	)
}

// Bool returns a boolean option or fallback if it's not set
func (c *Config) Bool(section Section, option Option, fallback bool) bool {
	v, err := c.Value(section, option)
	if err != nil {
		return fallback
	}
	return v.GetBool()
}

// SetValue sets an option in the user config and saves it immediately
func (c *Config) SetValue(section Section, option Option, value string) error {
	c.userFile.
		Section(section.String()).
		Key(option.String()).
		SetValue(value)

	if err := c.userFile.SaveTo(c.filePath); err != nil {
		debug.LogErr("failed to save config file:", err)
		return err
	}

	return nil
}

// NotesDir returns the persisted notes directory with ~ expanded.
// The environment variable LINKPAD_NOTES_DIR takes precedence.
func (c *Config) NotesDir() (string, error) {
	if dir := os.Getenv(EnvNotesDir); dir != "" {
		return app.ExpandHome(dir), nil
	}

	notesDir, err := c.Value(General, NotesDirectory)
	if err != nil {
		return "", err
	}

	return app.ExpandHome(notesDir.Value), nil
}

// MetaValue retrieves a meta value of the note or directory at path
func (c *Config) MetaValue(path string, option Option) (string, error) {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	if c.metaFile == nil {
		return "", errors.New("could not find meta infos file")
	}

	sect, err := c.metaFile.GetSection(path)
	if err != nil {
		return "", fmt.Errorf("could not find meta section: %s", path)
	}

	if !sect.HasKey(option.String()) {
		return "", fmt.Errorf(
			"could not find meta option `%s` in section `%s`",
			option,
			path,
		)
	}

	return sect.Key(option.String()).String(), nil
}

// SetMetaValue sets a meta value and schedules saving with a debounce
func (c *Config) SetMetaValue(path string, option Option, value string) {
	c.flushMu.Lock()
	opt := c.metaFile.Section(path).Key(option.String())

	if opt.Value() == value {
		c.flushMu.Unlock()
		return
	}

	opt.SetValue(value)
	c.flushMu.Unlock()

	c.debounceFlush()
}

// DeleteMetaSection removes all meta infos of path, e.g. a deleted note
func (c *Config) DeleteMetaSection(path string) {
	c.flushMu.Lock()
	c.metaFile.DeleteSection(path)
	c.flushMu.Unlock()

	c.debounceFlush()
}

// Flush writes pending meta changes to disk right away
func (c *Config) Flush() error {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	if c.flushTimer != nil {
		c.flushTimer.Stop()
		c.flushTimer = nil
	}

	return c.metaFile.SaveTo(c.metaFilePath)
}

// debounceFlush delays and batches saving of metaFile changes
func (c *Config) debounceFlush() {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	if c.flushTimer != nil {
		c.flushTimer.Stop()
	}

	c.flushTimer = time.AfterFunc(c.flushDelay, func() {
		c.flushMu.Lock()
		defer c.flushMu.Unlock()

		if err := c.metaFile.SaveTo(c.metaFilePath); err != nil {
			debug.LogErr("failed to save meta infos:", err)
		}
	})
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	return f.Close()
}
