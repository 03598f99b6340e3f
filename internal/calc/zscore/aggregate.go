package zscore

type AggregateResult struct {
	BSA          float64                      `json:"bsa" yaml:"bsa"`
	SqrtBSA      float64                      `json:"sqrt_bsa" yaml:"sqrt_bsa"`
	Weight       float64                      `json:"weight" yaml:"weight"`
	SqrtWeight   float64                      `json:"sqrt_weight" yaml:"sqrt_weight"`
	Results      map[Method]map[Valve]float64 `json:"results" yaml:"results"`
	Coefficients map[Method]map[Valve]Line    `json:"coefficients" yaml:"coefficients"`
}

// ComputeAll evaluates every method against every valve.
func ComputeAll(in PatientInput) AggregateResult {
	d := Derive(in)
	res := AggregateResult{
		BSA:          d.BSA,
		SqrtBSA:      d.SqrtBSA,
		Weight:       d.Weight,
		SqrtWeight:   d.SqrtWeight,
		Results:      make(map[Method]map[Valve]float64, len(methodOrder)),
		Coefficients: make(map[Method]map[Valve]Line, len(methodOrder)),
	}
	for _, m := range methodOrder {
		x := Variable(m, d)
		res.Results[m] = make(map[Valve]float64, len(valveOrder))
		res.Coefficients[m] = make(map[Valve]Line, len(valveOrder))
		for _, v := range valveOrder {
			res.Results[m][v] = Predict(m, v, x).Predicted
			res.Coefficients[m][v] = LookupCoefficients(m, v)
		}
	}
	return res
}

func (r AggregateResult) Metrics() DerivedMetrics {
	return DerivedMetrics{BSA: r.BSA, SqrtBSA: r.SqrtBSA, Weight: r.Weight, SqrtWeight: r.SqrtWeight}
}
