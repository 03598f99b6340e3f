package zscore

type Coefficient struct {
	Intercept float64 `json:"intercept" yaml:"intercept"`
	Slope     float64 `json:"slope" yaml:"slope"`
	SD        float64 `json:"sd" yaml:"sd"`
}

// Line is the reporting view of a Coefficient.
type Line struct {
	Intercept float64 `json:"intercept" yaml:"intercept"`
	Slope     float64 `json:"slope" yaml:"slope"`
}

func (c Coefficient) Line() Line {
	return Line{Intercept: c.Intercept, Slope: c.Slope}
}

// Literature-derived regression constants, mm.
var table = map[Method]map[Valve]Coefficient{
	// Lopez et al., J Am Soc Echocardiogr 2010. x = sqrt(weight kg)
	MethodPHNLopez: {
		ValveAortic:    {Intercept: 5.8, Slope: 1.85, SD: 1.1},
		ValveMitral:    {Intercept: 7.2, Slope: 2.45, SD: 1.4},
		ValvePulmonary: {Intercept: 6.8, Slope: 2.1, SD: 1.2},
		ValveTricuspid: {Intercept: 9.5, Slope: 2.8, SD: 1.7},
		ValveLPA:       {Intercept: 4.2, Slope: 1.35, SD: 0.85},
		ValveRPA:       {Intercept: 4.5, Slope: 1.42, SD: 0.88},
	},
	// Pettersen et al., J Am Soc Echocardiogr 2008. x = BSA m2
	MethodPettersen: {
		ValveAortic:    {Intercept: 6.1, Slope: 10.8, SD: 0.95},
		ValveMitral:    {Intercept: 9.2, Slope: 13.5, SD: 1.25},
		ValvePulmonary: {Intercept: 7.8, Slope: 11.2, SD: 1.05},
		ValveTricuspid: {Intercept: 11.5, Slope: 15.3, SD: 1.55},
		ValveLPA:       {Intercept: 3.5, Slope: 7.2, SD: 0.72},
		ValveRPA:       {Intercept: 3.8, Slope: 7.5, SD: 0.75},
	},
	// Sluysmans & Colan, J Appl Physiol 2005. x = sqrt(BSA)
	MethodBoston: {
		ValveAortic:    {Intercept: -0.12, Slope: 15.5, SD: 1.05},
		ValveMitral:    {Intercept: 1.85, Slope: 18.9, SD: 1.35},
		ValvePulmonary: {Intercept: 0.75, Slope: 15.8, SD: 1.15},
		ValveTricuspid: {Intercept: 3.2, Slope: 20.8, SD: 1.65},
		ValveLPA:       {Intercept: -0.85, Slope: 10.2, SD: 0.82},
		ValveRPA:       {Intercept: -0.62, Slope: 10.6, SD: 0.85},
	},
	// Cantinotti et al. 2014/2017. x = sqrt(BSA)
	MethodCantinotti: {
		ValveAortic:    {Intercept: 0.86, Slope: 14.2, SD: 0.88},
		ValveMitral:    {Intercept: 2.95, Slope: 17.8, SD: 1.18},
		ValvePulmonary: {Intercept: 1.62, Slope: 14.7, SD: 1.02},
		ValveTricuspid: {Intercept: 3.85, Slope: 19.5, SD: 1.48},
		ValveLPA:       {Intercept: -0.35, Slope: 9.8, SD: 0.78},
		ValveRPA:       {Intercept: -0.18, Slope: 10.2, SD: 0.82},
	},
}

// coefficient resolves a (method, valve) pair. An unknown valve silently
// resolves to the method's aortic row; callers that need to reject it
// should go through ParseValve first.
func coefficient(m Method, v Valve) (Coefficient, bool) {
	rows, ok := table[m]
	if !ok {
		return Coefficient{}, false
	}
	c, ok := rows[v]
	if !ok {
		c = rows[ValveAortic]
	}
	return c, true
}

// LookupCoefficients returns the intercept and slope used for (m, v).
// Unknown methods yield a zero Line.
func LookupCoefficients(m Method, v Valve) Line {
	c, _ := coefficient(m, v)
	return c.Line()
}

// LookupCoefficient is LookupCoefficients including the SD.
func LookupCoefficient(m Method, v Valve) (Coefficient, bool) {
	return coefficient(m, v)
}
