package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logger. Console sessions log text to stderr so
// the menu on stdout stays readable; when a log file is configured the output
// is JSON and rotated by lumberjack. The returned func flushes and closes the
// file sink.
func Setup(cfg config.LogConfig) (func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		log.SetFormatter(log.TextFormatter)
		return func() error { return nil }, nil
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(rotating)
	log.SetFormatter(log.JSONFormatter)
	log.Debug("Logging to file", "path", cfg.File, "max_size_mb", maxSize)
	return rotating.Close, nil
}
