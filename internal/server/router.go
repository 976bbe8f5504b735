package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"autoinsight/pkg/logx"
	"autoinsight/pkg/middlewarex"
)

type RouterOptions struct {
	// Logger is the base of every request logger; nil takes the one from the
	// request context.
	Logger            *slog.Logger
	CORSAllowedOrigin string
	LogFieldMaxLen    int
}

// NewRouter builds the HTTP handler with the middleware chain and the routes
// of s. Probe and docs requests are not dumped to the log.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(opts.Logger, masker),
		middlewarex.Recovery,
		middlewarex.CORS(opts.CORSAllowedOrigin),
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen, PathHealth, PathDocs),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen, PathHealth, PathDocs),
	)

	s.RegisterRoutes(r)

	return otelhttp.NewHandler(r, "autoinsight")
}
