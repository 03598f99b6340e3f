package zscore

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input")

type PatientInput struct {
	HeightCM float64 `json:"height_cm" yaml:"height_cm"`
	WeightKG float64 `json:"weight_kg" yaml:"weight_kg"`
}

// Validate is for callers; the engine functions assume a valid input and
// never call it themselves.
func (in PatientInput) Validate() error {
	if math.IsNaN(in.HeightCM) || math.IsInf(in.HeightCM, 0) || in.HeightCM <= 0 {
		return fmt.Errorf("%w: height must be a positive number", ErrInvalidInput)
	}
	if math.IsNaN(in.WeightKG) || math.IsInf(in.WeightKG, 0) || in.WeightKG <= 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	return nil
}
