package zscore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrUnknownValve  = errors.New("unknown valve")
)

type Method string

const (
	MethodPHNLopez   Method = "phn-lopez"
	MethodPettersen  Method = "pettersen"
	MethodBoston     Method = "boston"
	MethodCantinotti Method = "cantinotti"
)

type Valve string

const (
	ValveAortic    Valve = "aortic"
	ValveMitral    Valve = "mitral"
	ValvePulmonary Valve = "pulmonary"
	ValveTricuspid Valve = "tricuspid"
	ValveLPA       Valve = "lpa"
	ValveRPA       Valve = "rpa"
)

var (
	methodOrder = []Method{MethodPHNLopez, MethodPettersen, MethodBoston, MethodCantinotti}
	valveOrder  = []Valve{ValveAortic, ValveMitral, ValvePulmonary, ValveTricuspid, ValveLPA, ValveRPA}
)

// Methods returns the four methods in display order.
func Methods() []Method {
	return append([]Method(nil), methodOrder...)
}

// Valves returns the six valves in display order.
func Valves() []Valve {
	return append([]Valve(nil), valveOrder...)
}

var valveLabels = map[Valve]string{
	ValveAortic:    "Aortic",
	ValveMitral:    "Mitral",
	ValvePulmonary: "Pulmonary",
	ValveTricuspid: "Tricuspid",
	ValveLPA:       "LPA",
	ValveRPA:       "RPA",
}

func (v Valve) Label() string {
	if l, ok := valveLabels[v]; ok {
		return l
	}
	return string(v)
}

func (m Method) Label() string {
	if f, ok := formulas[m]; ok {
		return f.Name
	}
	return string(m)
}

// ParseMethod is the strict counterpart of the lookup fallbacks, for callers
// that want to reject malformed identifiers instead of defaulting.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := table[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}

func ParseValve(s string) (Valve, error) {
	v := Valve(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := valveLabels[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownValve, s)
	}
	return v, nil
}
