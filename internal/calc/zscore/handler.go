package zscore

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type PairRequest struct {
	PatientInput
	Method     string  `json:"method"`
	Valve      string  `json:"valve"`
	MeasuredMM float64 `json:"measured_mm,omitempty"`
}

type PairResponse struct {
	Method    Method   `json:"method"`
	Valve     Valve    `json:"valve"`
	Variable  float64  `json:"variable"`
	Predicted float64  `json:"predicted"`
	SD        float64  `json:"sd"`
	Z         *float64 `json:"z,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input PatientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, ComputeAll(input))
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	res, ok := h.pair(w, r, false)
	if !ok {
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	res, ok := h.pair(w, r, true)
	if !ok {
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Formulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, DescribeAll())
}

// pair decodes and answers a single (method, valve) request. A positive
// measured_mm adds the Z score.
func (h *Handler) pair(w http.ResponseWriter, r *http.Request, needMeasured bool) (PairResponse, bool) {
	var req PairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return PairResponse{}, false
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return PairResponse{}, false
	}
	m, err := ParseMethod(req.Method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return PairResponse{}, false
	}
	v, err := ParseValve(req.Valve)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return PairResponse{}, false
	}
	if req.MeasuredMM < 0 || (needMeasured && req.MeasuredMM == 0) {
		http.Error(w, "measured_mm must be positive", http.StatusBadRequest)
		return PairResponse{}, false
	}

	x := Variable(m, Derive(req.PatientInput))
	p := Predict(m, v, x)
	res := PairResponse{Method: m, Valve: v, Variable: x, Predicted: p.Predicted, SD: p.SD}
	if req.MeasuredMM > 0 {
		z := ZScore(req.MeasuredMM, p.Predicted, p.SD)
		res.Z = &z
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
