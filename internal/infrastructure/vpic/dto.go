package vpic

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"

	"autoinsight/internal/domain/entity"
	"autoinsight/internal/domain/value"
)

type decodeResponse struct {
	Count          int                   `json:"Count"`
	Message        string                `json:"Message"`
	SearchCriteria string                `json:"SearchCriteria"`
	Results        []jsoniter.RawMessage `json:"Results"`
}

// first returns the authoritative result, provided it is a JSON object.
func (r decodeResponse) first() ([]byte, bool) {
	first := bytes.TrimSpace(r.Results[0])

	if len(first) == 0 || first[0] != '{' {
		return nil, false
	}

	return first, true
}

// attribute is an optional vPIC value. Strings are kept verbatim, other
// scalars by their literal JSON text, null and missing stay absent.
type attribute struct {
	value *string
}

func (a *attribute) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		a.value = nil

		return nil
	}

	var s string

	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}

	a.value = &s

	return nil
}

type result struct {
	Make                 attribute `json:"Make"`
	Model                attribute `json:"Model"`
	ModelYear            attribute `json:"ModelYear"`
	Manufacturer         attribute `json:"Manufacturer"`
	Series               attribute `json:"Series"`
	Trim                 attribute `json:"Trim"`
	GVWR                 attribute `json:"GVWR"`
	DriveType            attribute `json:"DriveType"`
	EngineCylinders      attribute `json:"EngineCylinders"`
	FuelTypePrimary      attribute `json:"FuelTypePrimary"`
	FuelTypeSecondary    attribute `json:"FuelTypeSecondary"`
	ElectrificationLevel attribute `json:"ElectrificationLevel"`
	EngineModel          attribute `json:"EngineModel"`
	EngineHP             attribute `json:"EngineHP"`
	EngineManufacturer   attribute `json:"EngineManufacturer"`
	DisplacementL        attribute `json:"DisplacementL"`
	TransmissionSpeeds   attribute `json:"TransmissionSpeeds"`
	TransmissionStyle    attribute `json:"TransmissionStyle"`
}

func (r result) vehicle(vin value.VIN) entity.DecodedVehicle {
	return entity.DecodedVehicle{
		VIN:                      vin,
		Make:                     r.Make.value,
		Model:                    r.Model.value,
		Year:                     r.ModelYear.value,
		Manufacturer:             r.Manufacturer.value,
		Series:                   r.Series.value,
		Trim:                     r.Trim.value,
		GrossVehicleWeightRating: r.GVWR.value,
		DriveType:                r.DriveType.value,
		Cylinders:                r.EngineCylinders.value,
		PrimaryFuelType:          r.FuelTypePrimary.value,
		SecondaryFuelType:        r.FuelTypeSecondary.value,
		ElectrificationLevel:     r.ElectrificationLevel.value,
		EngineModel:              r.EngineModel.value,
		EngineHorsepower:         r.EngineHP.value,
		EngineManufacturer:       r.EngineManufacturer.value,
		EngineDisplacementL:      r.DisplacementL.value,
		TransmissionSpeeds:       r.TransmissionSpeeds.value,
		TransmissionStyle:        r.TransmissionStyle.value,
	}
}
