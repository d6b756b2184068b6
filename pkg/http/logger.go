package http

import (
	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after an error HTTP status or when no response was received (httpStatus 0)
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (NopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound traffic through zap. Response bodies are only logged on errors.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates an HTTPLogger backed by the given zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) LogRequest(method, url string, _ map[string]string) {
	l.logger.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, _ string, latency int64) {
	l.logger.Info("outbound request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Error("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}
