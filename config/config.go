// Package config loads the editor settings from a TOML file.
//
// Every key is optional. A missing file yields Default.
//
//	tab_stop = 4
//	sign_column = 5
//	message_timeout = "3s"
//	quit_times = 3
//	start_mode = "insert"
//	log_file = "/tmp/termedit.log"
//	log_level = "debug"
//	log_format = "json"
//
//	[theme]
//	comment = "bright-black"
//	keyword-primary = "bold yellow"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/hnimtadd/termedit/editor/color"
	"github.com/hnimtadd/termedit/editor/core"
	"github.com/hnimtadd/termedit/editor/style"
	"github.com/hnimtadd/termedit/editor/syntax"
	"github.com/hnimtadd/termedit/editor/tabstops"
	"github.com/hnimtadd/termedit/logger"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	TabStop int `toml:"tab_stop"`
	// SignColumn is the width of the line number gutter, 0 for none.
	SignColumn     int    `toml:"sign_column"`
	MessageTimeout string `toml:"message_timeout"`
	// QuitTimes is how many Ctrl-Q presses quit a modified buffer.
	QuitTimes int    `toml:"quit_times"`
	StartMode string `toml:"start_mode"`

	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Theme maps a highlight class name to a space separated list of
	// a color name and the attributes "bold" and "underline".
	Theme map[string]string `toml:"theme"`
}

func Default() *Config {
	return &Config{
		TabStop:        tabstops.DefaultInterval,
		SignColumn:     0,
		MessageTimeout: "5s",
		QuitTimes:      2,
		StartMode:      core.ModeNormal.Name,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads the config at path. An empty path, or one that does not
// exist, is not an error; the defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	return parse("<bytes>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TabStop < 1 {
		return invalid("tab_stop", "must be at least 1, got %d", c.TabStop)
	}
	if c.SignColumn < 0 {
		return invalid("sign_column", "must not be negative, got %d", c.SignColumn)
	}
	if c.QuitTimes < 0 {
		return invalid("quit_times", "must not be negative, got %d", c.QuitTimes)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if _, err := c.BuildTheme(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", "%v", err)
	}
	if _, err := logger.ParseType(c.LogFormat); err != nil {
		return invalid("log_format", "%v", err)
	}
	return nil
}

// Timeout is MessageTimeout as a duration.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.MessageTimeout)
	if err != nil {
		return 0, invalid("message_timeout", "%v", err)
	}
	if d <= 0 {
		return 0, invalid("message_timeout", "must be positive, got %s", d)
	}
	return d, nil
}

// Mode is the mode the editor starts in.
func (c *Config) Mode() (core.Mode, error) {
	if c.StartMode == "" {
		return core.ModeNormal, nil
	}
	mode := core.ModeFromName(c.StartMode)
	if mode == nil || *mode == core.ModeCommand {
		return core.ModeNormal, invalid("start_mode", "unknown mode %q", c.StartMode)
	}
	return *mode, nil
}

// BuildTheme resolves the [theme] table, filling the classes it leaves out
// from style.DefaultStyles.
func (c *Config) BuildTheme() (*style.Theme, error) {
	if len(c.Theme) == 0 {
		return style.DefaultTheme, nil
	}
	overrides := make(map[syntax.Class]style.Style, len(c.Theme))
	for name, value := range c.Theme {
		class, err := syntax.ParseClass(name)
		if err != nil {
			return nil, invalid("theme", "%v", err)
		}
		s, err := parseStyle(value)
		if err != nil {
			return nil, invalid("theme."+name, "%v", err)
		}
		overrides[class] = s
	}
	return style.NewTheme(overrides), nil
}

func parseStyle(value string) (style.Style, error) {
	var s style.Style
	for _, field := range strings.Fields(value) {
		switch strings.ToLower(field) {
		case "bold":
			s.Bold = true
		case "underline":
			s.Underline = true
		case "default":
			s.HasForeground = false
		default:
			c, err := color.Parse(field)
			if err != nil {
				return style.Style{}, err
			}
			s.Foreground, s.HasForeground = c, true
		}
	}
	return s, nil
}

// LoggerOptions returns the level and format of the log. Validate must have
// passed.
func (c *Config) LoggerOptions() (logger.Level, logger.Type) {
	level, _ := logger.ParseLevel(c.LogLevel)
	typ, _ := logger.ParseType(c.LogFormat)
	return level, typ
}
