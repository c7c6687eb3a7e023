// Package logger configura el logger estructurado del proceso.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel convierte el nivel configurado; valores desconocidos caen en info.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup crea un logger JSON sobre stdout y lo instala como slog por defecto.
func Setup(level string) *slog.Logger {
	return SetupWithWriter(os.Stdout, level)
}

func SetupWithWriter(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}
