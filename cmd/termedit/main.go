// Command termedit is a small modal text editor for the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/hnimtadd/termedit"
	"github.com/hnimtadd/termedit/config"
	"github.com/hnimtadd/termedit/logger"
	"github.com/hnimtadd/termedit/terminal/backend"
)

const (
	defaultRows = 24
	defaultCols = 80
)

type options struct {
	configPath  string
	filename    string
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("termedit %s\n", termedit.Version)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	tty, err := backend.Open(os.Stdin, os.Stdout, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	code := edit(tty, cfg, opts.filename, log)
	if err := tty.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to restore terminal: %v\n", err)
	}
	return code
}

// edit runs the session on tty. A panic, including a failed allocation, is
// fatal: it is logged and the terminal is restored before exiting.
func edit(tty *backend.TTY, cfg *config.Config, filename string, log logger.Logger) (code int) {
	defer func() {
		if r := recover(); r != nil {
			_ = tty.Close()
			log.Error("panic", "value", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "termedit: fatal: %v\n", r)
			code = 2
		}
	}()

	session, err := newSession(tty, cfg, log)
	if err != nil {
		_ = tty.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if filename != "" {
		if err := session.OpenFile(filename); err != nil {
			_ = tty.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := session.Run(ctx, tty); err != nil && !errors.Is(err, context.Canceled) {
		_ = tty.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newSession(tty *backend.TTY, cfg *config.Config, log logger.Logger) (*termedit.Session, error) {
	rows, cols, err := tty.Size()
	if err != nil {
		log.Warn("using default window size", "error", err)
		rows, cols = defaultRows, defaultCols
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	theme, err := cfg.BuildTheme()
	if err != nil {
		return nil, err
	}

	return termedit.NewSession(termedit.Options{
		Rows:           rows,
		Cols:           cols,
		TabStop:        cfg.TabStop,
		SignColumn:     cfg.SignColumn,
		MessageTimeout: timeout,
		QuitTimes:      cfg.QuitTimes,
		StartMode:      mode,
		Theme:          theme,
		Logger:         log,
	}), nil
}

// openLog opens the configured log file. Without one nothing is logged,
// since stdout and stderr belong to the editor.
func openLog(cfg *config.Config) (logger.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logger.Discard, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	level, typ := cfg.LoggerOptions()
	return logger.New(logger.Options{Buffer: f, Level: level, Type: typ}), func() { _ = f.Close() }, nil
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	flag.Usage = func() {
		usage(flag.CommandLine.Output())
	}
	flag.Parse()
	opts.filename = flag.Arg(0)
	return opts
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: termedit [options] [file]\n\nOptions:\n")
	flag.PrintDefaults()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termedit", "config.toml")
}
