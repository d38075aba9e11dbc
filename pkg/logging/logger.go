// Package logging provides structured logging for the lunarlander-bot
// application. It wraps Go's standard slog package with episode IDs so
// the log lines of one simulation episode can be correlated, and with
// optional rotating file output.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with episode ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with JSON output and configurable level.
// The level is controlled by the LANDER_LOG_LEVEL environment variable
// (DEBUG, INFO, WARN, ERROR; default INFO). If LANDER_LOG_FILE is set,
// output goes to that file with size-based rotation instead of stdout.
func NewLogger() *Logger {
	var out io.Writer = os.Stdout
	if path := os.Getenv("LANDER_LOG_FILE"); path != "" {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    32, // megabytes
			MaxBackups: 4,
		}
	}
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: getLogLevelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message with automatic episode ID extraction
// from the context.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if episodeID := GetEpisodeID(ctx); episodeID != "" {
		args = append(args, "episode_id", episodeID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

// episodeIDKey is the context key for episode IDs
type episodeIDKey struct{}

// WithEpisodeID adds an episode ID to the context. If no ID is
// provided, a new one is generated.
func WithEpisodeID(ctx context.Context, episodeID string) context.Context {
	if episodeID == "" {
		episodeID = GenerateEpisodeID()
	}
	return context.WithValue(ctx, episodeIDKey{}, episodeID)
}

// GetEpisodeID extracts the episode ID from the context. Returns the
// empty string if none is present.
func GetEpisodeID(ctx context.Context) string {
	if id, ok := ctx.Value(episodeIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateEpisodeID creates a new random episode ID.
func GenerateEpisodeID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// getLogLevelFromEnv determines the log level from the environment.
func getLogLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("LANDER_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WrapError wraps an error with additional context information,
// preserving the original error for errors.Is/As.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
