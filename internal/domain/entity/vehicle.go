package entity

import "autoinsight/internal/domain/value"

// DecodedVehicle holds the attributes the external decoder returned for a
// VIN. Every attribute is optional: nil means the decoder did not send it.
type DecodedVehicle struct {
	VIN                      value.VIN
	Make                     *string
	Model                    *string
	Year                     *string
	Manufacturer             *string
	Series                   *string
	Trim                     *string
	GrossVehicleWeightRating *string
	DriveType                *string
	Cylinders                *string
	PrimaryFuelType          *string
	SecondaryFuelType        *string
	ElectrificationLevel     *string
	EngineModel              *string
	EngineHorsepower         *string
	EngineManufacturer       *string
	EngineDisplacementL      *string
	TransmissionSpeeds       *string
	TransmissionStyle        *string
}

// HasMakeOrModel is false when neither make nor model carries a value.
func (v DecodedVehicle) HasMakeOrModel() bool {
	return (v.Make != nil && *v.Make != "") || (v.Model != nil && *v.Model != "")
}

type PriceEstimate struct {
	Make           string
	Model          string
	Year           int
	EstimatedPrice int
}
