// Package logging builds the process logger shared by all commands.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger on stdout. level is any name slog understands
// ("debug", "WARN", "error+2"); anything else means info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
