package middlewarex

import (
	"log/slog"
	"net/http"

	"autoinsight/pkg/contextx"
	"autoinsight/pkg/logx"
)

// Logger puts a request scoped logger into the context. TraceID must run
// before it. A nil base falls back to the logger already in the context.
func Logger(
	base *slog.Logger,
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			log := base
			if log == nil {
				log = logger(ctx)
			}

			traceID, err := contextx.TraceIDFromContext(ctx)
			if err != nil {
				log.Error("contextx.TraceIDFromContext", logx.Error(err))
			}

			ctx = contextx.WithLogger(
				ctx,
				log.With(
					logx.Stringer(logx.FieldTraceID, traceID),
					slog.String(logx.FieldURL, string(sensitiveDataMasker.Mask([]byte(r.URL.String())))),
					slog.String(logx.FieldHTTPMethod, r.Method),
					slog.String(logx.FieldIP, r.RemoteAddr),
				),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
