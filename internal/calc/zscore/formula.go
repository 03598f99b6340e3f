package zscore

type FormulaInfo struct {
	Method      Method `json:"method" yaml:"method"`
	Name        string `json:"name" yaml:"name"`
	Formula     string `json:"formula" yaml:"formula"`
	Description string `json:"description" yaml:"description"`
}

var formulas = map[Method]FormulaInfo{
	MethodPHNLopez: {
		Method:      MethodPHNLopez,
		Name:        "PHN/Lopez",
		Formula:     "Predicted = intercept + slope × √weight(kg)",
		Description: "Linear regression on the square root of body weight",
	},
	MethodPettersen: {
		Method:      MethodPettersen,
		Name:        "Pettersen 2008",
		Formula:     "Predicted = intercept + slope × BSA(m²)",
		Description: "Linear regression on BSA",
	},
	MethodBoston: {
		Method:      MethodBoston,
		Name:        "Boston (BCH/Colan)",
		Formula:     "Predicted = intercept + slope × √BSA(m²)",
		Description: "Linear regression on the square root of BSA",
	},
	MethodCantinotti: {
		Method:      MethodCantinotti,
		Name:        "Cantinotti (2014/2017)",
		Formula:     "Predicted = intercept + slope × √BSA(m²)",
		Description: "Linear regression on the square root of BSA",
	},
}

// DescribeFormula falls back to Pettersen 2008 for unknown methods.
func DescribeFormula(m Method) FormulaInfo {
	if f, ok := formulas[m]; ok {
		return f
	}
	return formulas[MethodPettersen]
}

func DescribeAll() []FormulaInfo {
	out := make([]FormulaInfo, 0, len(methodOrder))
	for _, m := range methodOrder {
		out = append(out, formulas[m])
	}
	return out
}
