// Package attr provides slog attribute helpers shared across modules.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

// Error renders err under the "error" key. A nil error renders as an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func UserID(id uuid.UUID) slog.Attr { return slog.String("user_id", id.String()) }

func RoundID(id uuid.UUID) slog.Attr { return slog.String("round_id", id.String()) }

func HoleID(id uuid.UUID) slog.Attr { return slog.String("hole_id", id.String()) }

// ExtractCorrelationID returns the request ID assigned by the HTTP middleware,
// or "unknown" outside a request.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "unknown")
}
