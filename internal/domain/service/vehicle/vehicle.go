// Package vehicle decodes VINs and prices vehicles.
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"autoinsight/internal/domain"
	"autoinsight/internal/domain/entity"
	"autoinsight/internal/domain/service/pricing"
	"autoinsight/internal/domain/value"
	"autoinsight/pkg/contextx"
	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	msgInvalidPricingInput = "Invalid input parameters. Make, Model, and a valid Year (e.g., 1900-current year + 2) are required."
	msgDecodeInternal      = "An unexpected error occurred during VIN decoding. Please contact support."

	problemRequired = "is required"
	problemInteger  = "must be an integer"
	problemYear     = "must be between %d and %d"
)

//go:generate moq -rm -out decoder_mock.gen.go . Decoder
type Decoder interface {
	Decode(ctx context.Context, vin value.VIN) (entity.DecodedVehicle, error)
}

// PriceQuery is the raw pricing input, as received from a caller.
type PriceQuery struct {
	Make  string `field:"make"  validate:"required"`
	Model string `field:"model" validate:"required"`
	Year  string `field:"year"  validate:"required,number"`
}

type Service struct {
	decoder  Decoder
	validate *validator.Validate
	now      func() time.Time
}

func NewService(decoder Decoder) *Service {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})

	return &Service{
		decoder:  decoder,
		validate: validate,
		now:      time.Now,
	}
}

// WithClock replaces the clock the pricing year bounds are computed from.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now

	return s
}

// DecodeVIN validates raw and decodes it with a single upstream call. Every
// returned error is a *domain.AppError.
func (s *Service) DecodeVIN(ctx context.Context, raw string) (entity.DecodedVehicle, error) {
	vin, err := value.ParseVIN(raw)
	if err != nil {
		logger(ctx).Warn("invalid VIN format", logx.VIN(raw), logx.Error(err))

		return entity.DecodedVehicle{}, fmt.Errorf("value.ParseVIN: %w", err)
	}

	vehicle, err := s.decoder.Decode(ctx, vin)
	if err != nil {
		if _, ok := domain.AsAppError(err); !ok {
			err = domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, msgDecodeInternal)
		}

		return entity.DecodedVehicle{}, fmt.Errorf("decoder.Decode: %w", err)
	}

	return vehicle, nil
}

// EstimatePrice validates q and prices the vehicle. Make and model are echoed
// as given.
func (s *Service) EstimatePrice(ctx context.Context, q PriceQuery) (entity.PriceEstimate, error) {
	currentYear := s.now().UTC().Year()

	year, err := s.validatePriceQuery(q, currentYear)
	if err != nil {
		logger(ctx).Warn(
			"invalid pricing input",
			slog.String("make", q.Make),
			slog.String("model", q.Model),
			slog.String("year", q.Year),
		)

		return entity.PriceEstimate{}, err
	}

	return entity.PriceEstimate{
		Make:           q.Make,
		Model:          q.Model,
		Year:           year,
		EstimatedPrice: pricing.Estimate(year, currentYear),
	}, nil
}

func (s *Service) validatePriceQuery(q PriceQuery, currentYear int) (int, error) {
	appErr := domain.NewError(domain.KindInvalidInput, errcodes.InvalidPricingInput, msgInvalidPricingInput)

	trimmed := PriceQuery{
		Make:  strings.TrimSpace(q.Make),
		Model: strings.TrimSpace(q.Model),
		Year:  strings.TrimSpace(q.Year),
	}

	if err := s.validate.Struct(trimmed); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return 0, domain.WrapError(err, domain.KindInternal, errcodes.InternalServerError, msgInvalidPricingInput)
		}

		for _, fe := range validationErrors {
			problem := problemRequired
			if fe.Tag() == "number" {
				problem = problemInteger
			}

			appErr = appErr.WithDetail(fe.Field(), problem)
		}

		return 0, appErr
	}

	year, err := strconv.Atoi(trimmed.Year)
	if err != nil || !pricing.YearInRange(year, currentYear) {
		return 0, appErr.WithDetail("year", fmt.Sprintf(problemYear, pricing.MinYear, currentYear+pricing.MaxYearsAhead))
	}

	return year, nil
}
