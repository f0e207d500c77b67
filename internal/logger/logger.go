// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Init initializes the default logger with a JSON handler writing to
// stderr. It is safe to call more than once; only the first call takes
// effect.
func Init(level slog.Level) {
	once.Do(func() {
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(defaultLogger)
	})
}

// Get returns the initialized default logger, initializing it at info
// level if needed.
func Get() *slog.Logger {
	Init(slog.LevelInfo)
	return defaultLogger
}
