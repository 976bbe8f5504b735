// These types mirror the schemas of api/openapi.yaml.
package rest

// VinDecodeResponse Vehicle attributes decoded from a VIN. Attributes the
// decoder did not return are serialized as null.
type VinDecodeResponse struct {
	VIN                      string  `json:"vin"`
	Make                     *string `json:"make"`
	Model                    *string `json:"model"`
	Year                     *string `json:"year"`
	Manufacturer             *string `json:"manufacturer"`
	Series                   *string `json:"series"`
	Trim                     *string `json:"trim"`
	GrossVehicleWeightRating *string `json:"grossVehicleWeightRating"`
	DriveType                *string `json:"driveType"`
	Cylinders                *string `json:"cylinders"`
	PrimaryFuelType          *string `json:"primaryFuelType"`
	SecondaryFuelType        *string `json:"secondaryFuelType"`
	ElectrificationLevel     *string `json:"electrificationLevel"`
	EngineModel              *string `json:"engineModel"`
	EngineHorsepower         *string `json:"engineHorsepower"`
	EngineManufacturer       *string `json:"engineManufacturer"`
	EngineDisplacementL      *string `json:"engineDisplacementL"`
	TransmissionSpeeds       *string `json:"transmissionSpeeds"`
	TransmissionStyle        *string `json:"transmissionStyle"`
}

// PriceEstimateResponse Mock vehicle price estimate
type PriceEstimateResponse struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	EstimatedPrice int    `json:"estimatedPrice"`
}

// ServiceInfo Service metadata
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

// Error Error body
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human readable message
	Message string `json:"message"`

	// Details Validation problems by request field
	Details map[string][]string `json:"details,omitempty"`

	// SupportID Request id to quote when contacting support
	SupportID string `json:"supportId,omitempty"`
}

// ErrorCode Error code
type ErrorCode string
