package tuning

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormValue is a raw numeric field as typed by the user. It accepts both JSON
// strings and JSON numbers so a half-filled form survives decoding and gets
// reported field by field.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = FormValue(str)
		return nil
	}
	*v = FormValue(s)
	return nil
}

func (v *FormValue) UnmarshalText(b []byte) error {
	*v = FormValue(b)
	return nil
}

func (v FormValue) parse() (float64, bool) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Form is the unvalidated calculator form. Balance is a percentage.
type Form struct {
	Weight         FormValue  `json:"weight" yaml:"weight"`
	Balance        FormValue  `json:"balance" yaml:"balance"`
	FrontFreq      FormValue  `json:"front_freq" yaml:"front_freq"`
	RearBias       FormValue  `json:"rear_bias" yaml:"rear_bias"`
	Stiffness      FormValue  `json:"stiffness" yaml:"stiffness"`
	FrontSpringMin FormValue  `json:"front_spring_min" yaml:"front_spring_min"`
	FrontSpringMax FormValue  `json:"front_spring_max" yaml:"front_spring_max"`
	RearSpringMin  FormValue  `json:"rear_spring_min" yaml:"rear_spring_min"`
	RearSpringMax  FormValue  `json:"rear_spring_max" yaml:"rear_spring_max"`
	FrontAero      bool       `json:"front_aero" yaml:"front_aero"`
	RearAero       bool       `json:"rear_aero" yaml:"rear_aero"`
	Suspension     Suspension `json:"suspension" yaml:"suspension"`
	StockDrive     StockDrive `json:"stock_drive" yaml:"stock_drive"`
	Swapped        bool       `json:"swapped" yaml:"swapped"`
	SwapDrive      StockDrive `json:"swap_drive" yaml:"swap_drive"`
}

// Accepted ranges for the numeric form fields.
const (
	MinWeight    = 100.0
	MaxWeight    = 5000.0
	MinFreq      = 1.0
	MaxFreq      = 6.0
	MinStiffness = 0.1
	MaxStiffness = 10.0
	MaxRearBias  = 100.0
	MaxSpring    = 5000.0
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Validate checks every field and builds the calculator input. On failure
// the returned error is a FieldErrors listing each offending field.
func (f Form) Validate() (Input, error) {
	errs := FieldErrors{}

	weight := rangeField(errs, "weight", f.Weight, "enter a weight", MinWeight, MaxWeight)
	freq := rangeField(errs, "front_freq", f.FrontFreq, "enter a front frequency", MinFreq, MaxFreq)
	bias := rangeField(errs, "rear_bias", f.RearBias, "enter a rear bias", -MaxRearBias, MaxRearBias)
	stiffness := rangeField(errs, "stiffness", f.Stiffness, "enter a stiffness multiplier", MinStiffness, MaxStiffness)

	balance := percentField(errs, "balance", f.Balance, "enter a front balance")

	frontMin, frontMax := boundsField(errs, "front_spring", f.FrontSpringMin, f.FrontSpringMax)
	rearMin, rearMax := boundsField(errs, "rear_spring", f.RearSpringMin, f.RearSpringMax)

	suspension := f.Suspension
	switch suspension {
	case "":
		suspension = SuspensionStock
	case SuspensionStock, SuspensionRacing, SuspensionOffroad:
	default:
		errs["suspension"] = fmt.Sprintf("unknown suspension type %q", f.Suspension)
	}

	drive, err := ResolveDrive(f.StockDrive, f.Swapped, f.SwapDrive)
	if err != nil {
		if f.Swapped && f.StockDrive.Valid() {
			errs["swap_drive"] = err.Error()
		} else {
			errs["stock_drive"] = err.Error()
		}
	}

	if len(errs) > 0 {
		return Input{}, errs
	}

	return Input{
		Weight:         weight,
		Balance:        balance / 100,
		FrontFreq:      freq,
		RearBias:       bias,
		Suspension:     suspension,
		Drive:          drive,
		FrontAero:      f.FrontAero,
		RearAero:       f.RearAero,
		Stiffness:      stiffness,
		FrontSpringMin: frontMin,
		FrontSpringMax: frontMax,
		RearSpringMin:  rearMin,
		RearSpringMax:  rearMax,
	}, nil
}

func rangeField(errs FieldErrors, name string, v FormValue, missing string, lo, hi float64) float64 {
	if strings.TrimSpace(string(v)) == "" {
		errs[name] = missing
		return 0
	}
	n, ok := v.parse()
	if !ok {
		errs[name] = "must be a number"
		return 0
	}
	if n < lo || n > hi {
		errs[name] = fmt.Sprintf("must be between %g and %g", lo, hi)
		return 0
	}
	return n
}

// percentField accepts a share of 100 with both ends excluded.
func percentField(errs FieldErrors, name string, v FormValue, missing string) float64 {
	if strings.TrimSpace(string(v)) == "" {
		errs[name] = missing
		return 0
	}
	n, ok := v.parse()
	if !ok {
		errs[name] = "must be a number"
		return 0
	}
	if n <= 0 || n >= 100 {
		errs[name] = "must be between 0 and 100 (exclusive)"
		return 0
	}
	return n
}

// boundsField validates a min/max spring pair. Per-value problems are keyed
// by the value's own field, an inverted pair by the pair's name.
func boundsField(errs FieldErrors, pair string, minV, maxV FormValue) (float64, float64) {
	lo, loOK := minV.parse()
	if !loOK || lo <= 0 || lo > MaxSpring {
		errs[pair+"_min"] = "enter a minimum value"
		loOK = false
	}
	hi, hiOK := maxV.parse()
	if !hiOK || hi <= 0 || hi > MaxSpring {
		errs[pair+"_max"] = "enter a maximum value"
		hiOK = false
	}
	if loOK && hiOK && lo >= hi {
		errs[pair] = "max must be greater than min"
	}
	return lo, hi
}
