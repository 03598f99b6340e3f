package zscore

import "math"

// Haycock allometric constants.
const (
	haycockK        = 0.024265
	haycockHeightEx = 0.3964
	haycockWeightEx = 0.5378
)

// ComputeBSA returns body surface area in m2. height is cm, weight is kg;
// both must be positive.
func ComputeBSA(heightCM, weightKG float64) float64 {
	return haycockK * math.Pow(heightCM, haycockHeightEx) * math.Pow(weightKG, haycockWeightEx)
}

type DerivedMetrics struct {
	BSA        float64 `json:"bsa"`
	SqrtBSA    float64 `json:"sqrt_bsa"`
	Weight     float64 `json:"weight"`
	SqrtWeight float64 `json:"sqrt_weight"`
}

func Derive(in PatientInput) DerivedMetrics {
	bsa := ComputeBSA(in.HeightCM, in.WeightKG)
	return DerivedMetrics{
		BSA:        bsa,
		SqrtBSA:    math.Sqrt(bsa),
		Weight:     in.WeightKG,
		SqrtWeight: math.Sqrt(in.WeightKG),
	}
}
