package server

import (
	"context"
	"log/slog"
	"net/http"

	"autoinsight/internal/domain"
	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/httpx/reply"
	"autoinsight/pkg/logx"
	"autoinsight/pkg/rest"
)

const (
	msgExternalAPI      = "Failed to retrieve VIN data from external source. Please try again later."
	msgExternalAPIParse = "The external VIN decoding service returned an unparseable response."
	msgInternal         = "An unexpected error occurred during VIN decoding. Please contact support."
	msgNotFound         = "The requested resource was not found."
	msgMethodNotAllowed = "The requested method is not allowed for this resource."
)

// writeError answers domain errors by their kind. Upstream and internal
// failures get a fixed message; their cause is only logged. Anything else is
// left to reply.Error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	appErr, ok := domain.AsAppError(err)
	if !ok {
		reply.Error(ctx, w, err)

		return
	}

	log := logger(ctx).With(
		slog.String(logx.FieldErrorCode, appErr.Code.String()),
		slog.String("kind", appErr.Kind.String()),
	)

	body := rest.Error{
		Code:    rest.ErrorCode(appErr.Code.String()),
		Message: appErr.Message,
		Details: appErr.Details,
	}

	var statusCode int

	switch appErr.Kind {
	case domain.KindInvalidInput:
		log.Warn("invalid input", logx.Error(err))

		statusCode = http.StatusBadRequest
	case domain.KindNotFound:
		log.Warn("not found", logx.Error(err))

		statusCode = http.StatusNotFound
	case domain.KindUpstreamUnavailable:
		log.Error("upstream unavailable", logx.Error(err))

		statusCode = http.StatusInternalServerError
		body = rest.Error{Code: rest.ErrorCode(errcodes.ExternalAPIError.String()), Message: msgExternalAPI}
	case domain.KindUpstreamMalformed:
		log.Error("upstream response malformed", logx.Error(err))

		statusCode = http.StatusInternalServerError
		body = rest.Error{Code: rest.ErrorCode(errcodes.ExternalAPIParseError.String()), Message: msgExternalAPIParse}
	default:
		log.Error("internal error", logx.Error(err))

		statusCode = http.StatusInternalServerError
		body = rest.Error{Code: rest.ErrorCode(errcodes.InternalServerError.String()), Message: msgInternal}
	}

	reply.Problem(ctx, w, statusCode, body)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	reply.Problem(r.Context(), w, http.StatusNotFound, rest.Error{
		Code:    rest.ErrorCode(errcodes.NotFound.String()),
		Message: msgNotFound,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	reply.Problem(r.Context(), w, http.StatusMethodNotAllowed, rest.Error{
		Code:    rest.ErrorCode(errcodes.MethodNotAllowed.String()),
		Message: msgMethodNotAllowed,
	})
}
