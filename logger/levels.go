package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel maps a config name onto a Level. The empty string is the
// default level.
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Type is the output format of a logger.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType maps "text" or "json" onto a Type. The empty string is text.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, fmt.Errorf("unknown log format %q", name)
}
