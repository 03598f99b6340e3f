package zscore

type Prediction struct {
	Predicted float64 `json:"predicted"`
	SD        float64 `json:"sd"`
}

// Predict evaluates intercept + slope*x for (m, v), where x is the method's
// designated independent variable (see Variable). Unknown methods give
// {0, 1}; unknown valves use the aortic row.
func Predict(m Method, v Valve, x float64) Prediction {
	c, ok := coefficient(m, v)
	if !ok {
		return Prediction{Predicted: 0, SD: 1}
	}
	return Prediction{Predicted: c.Intercept + c.Slope*x, SD: c.SD}
}

// PHNLopez takes sqrt(weight kg).
func PHNLopez(sqrtWeight float64, v Valve) Prediction {
	return Predict(MethodPHNLopez, v, sqrtWeight)
}

// Pettersen takes BSA in m2.
func Pettersen(bsa float64, v Valve) Prediction {
	return Predict(MethodPettersen, v, bsa)
}

// Boston takes sqrt(BSA).
func Boston(sqrtBSA float64, v Valve) Prediction {
	return Predict(MethodBoston, v, sqrtBSA)
}

// Cantinotti takes sqrt(BSA).
func Cantinotti(sqrtBSA float64, v Valve) Prediction {
	return Predict(MethodCantinotti, v, sqrtBSA)
}

// Variable picks the independent variable m regresses on. Unknown methods
// get 0, which Predict ignores anyway.
func Variable(m Method, d DerivedMetrics) float64 {
	switch m {
	case MethodPHNLopez:
		return d.SqrtWeight
	case MethodPettersen:
		return d.BSA
	case MethodBoston, MethodCantinotti:
		return d.SqrtBSA
	default:
		return 0
	}
}

// DiameterAtZeroZ is the predicted mean diameter (Z = 0) for a single pair.
func DiameterAtZeroZ(in PatientInput, m Method, v Valve) float64 {
	return Predict(m, v, Variable(m, Derive(in))).Predicted
}

// ZScore is the number of SDs a measured diameter lies from the prediction.
func ZScore(measured, predicted, sd float64) float64 {
	return (measured - predicted) / sd
}
