package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	EnvLogFile      = "ISSUECARD_LOG_FILE"
	EnvLogLevel     = "ISSUECARD_LOG_LEVEL"
	EnvLogTimestamp = "ISSUECARD_LOG_TIMESTAMP"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type Config struct {
	Level     zerolog.Level
	Timestamp bool
	// Path is the log file. The TUI owns stdout/stderr, so an empty path
	// disables logging.
	Path string
}

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
	closer io.Closer
)

// L returns the process logger. It is a no-op logger until Configure runs
// with a log file.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// ConfigFromEnv applies ISSUECARD_LOG_* overrides on top of the profile defaults.
func ConfigFromEnv(profile Profile) Config {
	cfg := DefaultConfig(profile)
	cfg.Path = strings.TrimSpace(os.Getenv(EnvLogFile))
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	return cfg
}

// Configure installs a logger for cfg, replacing (and closing) any previous one.
func Configure(cfg Config) error {
	var w io.Writer
	var c io.Closer
	if cfg.Path != "" {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w, c = f, f
	}
	install(w, c, cfg)
	return nil
}

// ConfigureWriter installs a logger writing to w. Intended for tests.
func ConfigureWriter(w io.Writer, cfg Config) {
	install(w, nil, cfg)
}

func install(w io.Writer, c io.Closer, cfg Config) {
	next := zerolog.Nop()
	if w != nil {
		ctx := zerolog.New(w).Level(cfg.Level).With()
		if cfg.Timestamp {
			ctx = ctx.Timestamp()
		}
		next = ctx.Logger()
	}

	mu.Lock()
	prev := closer
	logger = next
	closer = c
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
}

// Close flushes and detaches the current log file, if any.
func Close() {
	install(nil, nil, Config{})
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "none", "disabled":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
