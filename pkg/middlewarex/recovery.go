package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/httpx/reply"
	"autoinsight/pkg/logx"
	"autoinsight/pkg/rest"
)

const panicMessage = "An unexpected error occurred. Please contact support."

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Problem(ctx, w, http.StatusInternalServerError, rest.Error{
					Code:    rest.ErrorCode(errcodes.InternalServerError.String()),
					Message: panicMessage,
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
