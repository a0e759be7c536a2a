package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger every component shares. The service
// attribute keeps storefront lines identifiable in aggregated output.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "greencart"))
}
