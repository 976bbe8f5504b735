package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError   failure.ErrorCode = "INTERNAL_SERVER_ERROR"
	NotFound              failure.ErrorCode = "NOT_FOUND"
	MethodNotAllowed      failure.ErrorCode = "METHOD_NOT_ALLOWED"
	ValidationError       failure.ErrorCode = "VALIDATION_ERROR"
	InvalidVINFormat      failure.ErrorCode = "INVALID_VIN_FORMAT"
	VINDataNotFound       failure.ErrorCode = "VIN_DATA_NOT_FOUND"
	ExternalAPIError      failure.ErrorCode = "EXTERNAL_API_ERROR"
	ExternalAPIParseError failure.ErrorCode = "EXTERNAL_API_PARSE_ERROR" //nolint:gosec // false positive
	InvalidPricingInput   failure.ErrorCode = "INVALID_PRICING_INPUT"
)
