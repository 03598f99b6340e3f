package batch

import (
	"fmt"

	zscore "Annulus/internal/calc/zscore"
)

type Item struct {
	Label string `json:"label,omitempty"`
	zscore.PatientInput
}

type BatchInput struct {
	Items []Item `json:"items"`
}

type ItemResult struct {
	Label string `json:"label,omitempty"`
	zscore.PatientInput
	Result zscore.AggregateResult `json:"result"`
}

type BatchResult struct {
	Results []ItemResult `json:"results"`
}

const MaxItems = 1000

func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return BatchResult{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := BatchResult{Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := item.Validate(); err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, ItemResult{
			Label:        item.Label,
			PatientInput: item.PatientInput,
			Result:       zscore.ComputeAll(item.PatientInput),
		})
	}
	return out, nil
}
