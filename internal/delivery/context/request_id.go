// Package context carries the per-request trace id and logger between the
// echo layer, the usecases and outbound calls to the credential service.
package context

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is read on inbound requests and forwarded on calls to
	// the credential service.
	HeaderXRequestID = "X-Request-Id"

	MaxRequestIDLength = 128
)

// ValidRequestID accepts non-empty printable ASCII up to MaxRequestIDLength bytes.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// ResolveRequestID keeps an acceptable inbound id and replaces anything else
// with a fresh uuid.
func ResolveRequestID(inbound string) string {
	if ValidRequestID(inbound) {
		return inbound
	}

	return uuid.NewString()
}

// GetRequestID returns the id bound to c. A request that bypassed the
// request-id middleware gets one id, stored on first use.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	id := GetRequestIDFromContext(c.Request().Context())
	if id == "" {
		id = uuid.NewString()
	}
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no id.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// ForwardRequestID copies the id carried by ctx onto an outbound header set.
// Nothing is written when ctx has no acceptable id.
func ForwardRequestID(ctx context.Context, header http.Header) {
	if id := GetRequestIDFromContext(ctx); ValidRequestID(id) {
		header.Set(HeaderXRequestID, id)
	}
}

// GetLogger returns nil when ctx carries no request logger.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
