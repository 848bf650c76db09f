// Package logging configures logrus loggers for gmux components.
//
// The TUI owns the terminal, so interactive runs log to a file under the XDG
// state directory instead of stdout/stderr. One-shot CLI commands log to
// stderr. Levels are controlled with GMUX_LOG_LEVEL (default "warn").
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/gmux/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetLevel(levelFromEnv())
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	})

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// NewFileLogger returns a component logger that writes to a date-stamped log
// file under the gmux state directory. The TUI uses this so log lines never
// corrupt the alternate screen. If the log file cannot be opened, output is
// discarded rather than falling back to the terminal.
func NewFileLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	key := component + ":file"
	if logger, exists := loggers[key]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetLevel(levelFromEnv())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	logger.SetOutput(io.Discard)
	if logDir := paths.LogDir(); logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			name := fmt.Sprintf("gmux-%s.log", time.Now().Format("2006-01-02"))
			file, err := os.OpenFile(filepath.Join(logDir, name),
				os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				logger.SetOutput(file)
			}
		}
	}

	entry := logger.WithField("component", component)
	loggers[key] = entry
	return entry
}

func levelFromEnv() logrus.Level {
	levelStr := os.Getenv("GMUX_LOG_LEVEL")
	if levelStr == "" {
		return logrus.WarnLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
