package middlewarex

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAgeSeconds = 600

// CORS answers preflight requests with 204 and decorates cross-origin
// responses. Any requested header is accepted.
func CORS(allowedOrigin string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{ //nolint:exhaustruct
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:       []string{"*"},
		ExposedHeaders:       []string{headerNameTraceID},
		MaxAge:               corsMaxAgeSeconds,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
