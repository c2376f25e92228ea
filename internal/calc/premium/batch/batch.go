package batch

import (
	"errors"
	"fmt"

	"Tunelab/internal/calc/tuning"
)

const MaxItems = 200

// Setup is a named calculator form, one car/track combination.
type Setup struct {
	Name        string `json:"name" yaml:"name"`
	tuning.Form `yaml:",inline"`
}

type BatchInput struct {
	Items []Setup `json:"items"`
}

// Outcome is either a response or the field errors that prevented it.
type Outcome struct {
	Name     string             `json:"name"`
	Response *tuning.Response   `json:"response,omitempty"`
	Errors   tuning.FieldErrors `json:"errors,omitempty"`
}

func (o Outcome) OK() bool {
	return o.Response != nil
}

type BatchResult struct {
	Results []Outcome `json:"results"`
	Failed  int       `json:"failed"`
}

// Evaluate calculates every setup independently. An invalid setup is
// reported in its own outcome and does not stop the rest.
func Evaluate(setups []Setup) (BatchResult, error) {
	if len(setups) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	if len(setups) > MaxItems {
		return BatchResult{}, fmt.Errorf("too many items: %d (max %d)", len(setups), MaxItems)
	}
	out := BatchResult{Results: make([]Outcome, 0, len(setups))}
	for i, s := range setups {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Setup %d", i+1)
		}
		res, err := tuning.Evaluate(s.Form)
		if err != nil {
			var fe tuning.FieldErrors
			if !errors.As(err, &fe) {
				return BatchResult{}, err
			}
			out.Results = append(out.Results, Outcome{Name: name, Errors: fe})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, Outcome{Name: name, Response: &res})
	}
	return out, nil
}
