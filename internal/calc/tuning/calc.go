package tuning

type Suspension string

const (
	SuspensionStock   Suspension = "stock"
	SuspensionRacing  Suspension = "racing"
	SuspensionOffroad Suspension = "offroad"
)

// Drive is the effective drive-train after any swap has been resolved.
type Drive string

const (
	DriveFWD        Drive = "fwd"
	DriveRWD        Drive = "rwd"
	DriveAWDStock   Drive = "awd_stock"
	DriveAWDSwapped Drive = "awd_swapped"
)

type Input struct {
	Weight         float64    `json:"weight" yaml:"weight"`
	Balance        float64    `json:"balance" yaml:"balance"` // front axle share, 0..1
	FrontFreq      float64    `json:"front_freq" yaml:"front_freq"`
	RearBias       float64    `json:"rear_bias" yaml:"rear_bias"` // percent
	Suspension     Suspension `json:"suspension" yaml:"suspension"`
	Drive          Drive      `json:"drive" yaml:"drive"`
	FrontAero      bool       `json:"front_aero" yaml:"front_aero"`
	RearAero       bool       `json:"rear_aero" yaml:"rear_aero"`
	Stiffness      float64    `json:"stiffness" yaml:"stiffness"`
	FrontSpringMin float64    `json:"front_spring_min" yaml:"front_spring_min"`
	FrontSpringMax float64    `json:"front_spring_max" yaml:"front_spring_max"`
	RearSpringMin  float64    `json:"rear_spring_min" yaml:"rear_spring_min"`
	RearSpringMax  float64    `json:"rear_spring_max" yaml:"rear_spring_max"`
}

type Result struct {
	FrontSpring      float64 `json:"front_spring"`
	RearSpring       float64 `json:"rear_spring"`
	FrontRebound     float64 `json:"front_rebound"`
	RearRebound      float64 `json:"rear_rebound"`
	FrontCompression float64 `json:"front_compression"`
	RearCompression  float64 `json:"rear_compression"`
	FrontARB         float64 `json:"front_arb"`
	RearARB          float64 `json:"rear_arb"`
}

// Calculate runs the full tuning pipeline. The input is expected to have
// passed Form.Validate; out-of-range values are not rejected here.
func Calculate(in Input) Result {
	front, rear := sizeSprings(in.Weight, in.Balance, in.FrontFreq, in.RearBias)
	front, rear = adjustSprings(front, rear, in)

	d := deriveDampers(front, rear, in.Suspension)
	frontARB, rearARB := balanceARBs(front, rear, in)

	return Result{
		FrontSpring:      front,
		RearSpring:       rear,
		FrontRebound:     d.FrontRebound,
		RearRebound:      d.RearRebound,
		FrontCompression: d.FrontCompression,
		RearCompression:  d.RearCompression,
		FrontARB:         frontARB,
		RearARB:          rearARB,
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
