package reply

import (
	"context"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"autoinsight/pkg/contextx"
	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/logx"
	"autoinsight/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultErrorMessage = "An unexpected error occurred. Please contact support."

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Text(ctx context.Context, w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(text)); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

// Problem writes an error body. The support id is filled from the request
// trace id when the caller left it empty.
func Problem(ctx context.Context, w http.ResponseWriter, statusCode int, body rest.Error) {
	if body.SupportID == "" {
		body.SupportID = supportID(ctx)
	}

	JSON(ctx, w, statusCode, body)
}

// Error answers errors built with the failure package. Its description is
// shown to the caller, the wrapped error text is only logged.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := rest.Error{
		Code:    rest.ErrorCode(failure.Code(err).String()),
		Message: failure.Description(err),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		withDefaults(&response, errcodes.ValidationError, http.StatusBadRequest)
		Problem(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		withDefaults(&response, errcodes.NotFound, http.StatusNotFound)
		Problem(ctx, w, http.StatusNotFound, response)
	default:
		// Internal failures never expose their description.
		response = rest.Error{
			Code:    rest.ErrorCode(errcodes.InternalServerError.String()),
			Message: defaultErrorMessage,
		}
		Problem(ctx, w, http.StatusInternalServerError, response)
	}
}

func withDefaults(e *rest.Error, code failure.ErrorCode, statusCode int) {
	if e.Code == "" {
		e.Code = rest.ErrorCode(code.String())
	}

	if e.Message == "" {
		e.Message = http.StatusText(statusCode)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
