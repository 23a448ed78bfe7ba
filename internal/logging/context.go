package logging

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the LogData carried by the context, or nil if absent.
// Handlers must treat a nil result as "no request logging available".
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// Middleware attaches a fresh LogData to every request context and emits a
// completion entry with the accumulated fields and timings.
func Middleware(loggingName string, log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))

		endTimer()
		logData.AddData("path", req.URL.Path)
		logData.AddData("method", req.Method)
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}
