package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/requestid"
)

// Level maps LOG_LEVEL to a slog level. Unknown values mean info.
func Level() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w, JSON unless LOG_FORMAT=text.
func New(w io.Writer) *slog.Logger {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		return newText(w)
	}
	return newJSON(w)
}

func handlerOptions() *slog.HandlerOptions {
	lvl := Level()
	return &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}
}

func newJSON(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions()))
}

func newText(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions()))
}

// WithRequestID adds the request_id attribute when ctx carries one.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With(slog.String("request_id", reqID))
}

func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
