package server

import (
	"autoinsight/internal/domain/entity"
	"autoinsight/pkg/rest"
)

// The VIN is echoed exactly as the caller sent it.
func newRESTVinDecodeResponse(vin string, v entity.DecodedVehicle) rest.VinDecodeResponse {
	return rest.VinDecodeResponse{
		VIN:                      vin,
		Make:                     v.Make,
		Model:                    v.Model,
		Year:                     v.Year,
		Manufacturer:             v.Manufacturer,
		Series:                   v.Series,
		Trim:                     v.Trim,
		GrossVehicleWeightRating: v.GrossVehicleWeightRating,
		DriveType:                v.DriveType,
		Cylinders:                v.Cylinders,
		PrimaryFuelType:          v.PrimaryFuelType,
		SecondaryFuelType:        v.SecondaryFuelType,
		ElectrificationLevel:     v.ElectrificationLevel,
		EngineModel:              v.EngineModel,
		EngineHorsepower:         v.EngineHorsepower,
		EngineManufacturer:       v.EngineManufacturer,
		EngineDisplacementL:      v.EngineDisplacementL,
		TransmissionSpeeds:       v.TransmissionSpeeds,
		TransmissionStyle:        v.TransmissionStyle,
	}
}

func newRESTPriceEstimateResponse(e entity.PriceEstimate) rest.PriceEstimateResponse {
	return rest.PriceEstimateResponse{
		Make:           e.Make,
		Model:          e.Model,
		Year:           e.Year,
		EstimatedPrice: e.EstimatedPrice,
	}
}
