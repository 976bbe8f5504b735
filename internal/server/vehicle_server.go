package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"git.appkode.ru/pub/go/failure"

	"autoinsight/internal/domain/entity"
	"autoinsight/internal/domain/service/vehicle"
	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/httpx/reply"
)

const msgMalformedQuery = "Malformed query string."

type vehicleService interface {
	DecodeVIN(ctx context.Context, raw string) (entity.DecodedVehicle, error)
	EstimatePrice(ctx context.Context, q vehicle.PriceQuery) (entity.PriceEstimate, error)
}

type VehicleServer struct {
	vehicleService vehicleService
}

func NewVehicleServer(vehicleService vehicleService) VehicleServer {
	return VehicleServer{
		vehicleService: vehicleService,
	}
}

func (s VehicleServer) getV1DecodeVIN(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	vin := r.PathValue("vin")

	decoded, err := s.vehicleService.DecodeVIN(ctx, vin)
	if err != nil {
		return fmt.Errorf("vehicleService.DecodeVIN: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTVinDecodeResponse(vin, decoded))

	return nil
}

func (s VehicleServer) getV1Pricing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("url.ParseQuery: %w", err),
			failure.WithCode(errcodes.InvalidPricingInput),
			failure.WithDescription(msgMalformedQuery),
		)
	}

	estimate, err := s.vehicleService.EstimatePrice(ctx, vehicle.PriceQuery{
		Make:  query.Get("make"),
		Model: query.Get("model"),
		Year:  query.Get("year"),
	})
	if err != nil {
		return fmt.Errorf("vehicleService.EstimatePrice: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPriceEstimateResponse(estimate))

	return nil
}
