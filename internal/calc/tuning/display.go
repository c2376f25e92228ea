package tuning

import "strconv"

const SpringUnit = "kgf/mm"

// Display is a Result rounded the way the game's tuning menu shows it.
type Display struct {
	FrontSpring      string `json:"front_spring"`
	RearSpring       string `json:"rear_spring"`
	FrontRebound     string `json:"front_rebound"`
	RearRebound      string `json:"rear_rebound"`
	FrontCompression string `json:"front_compression"`
	RearCompression  string `json:"rear_compression"`
	FrontARB         string `json:"front_arb"`
	RearARB          string `json:"rear_arb"`
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (r Result) Display() Display {
	return Display{
		FrontSpring:      oneDecimal(r.FrontSpring) + " " + SpringUnit,
		RearSpring:       oneDecimal(r.RearSpring) + " " + SpringUnit,
		FrontRebound:     oneDecimal(r.FrontRebound),
		RearRebound:      oneDecimal(r.RearRebound),
		FrontCompression: oneDecimal(r.FrontCompression),
		RearCompression:  oneDecimal(r.RearCompression),
		FrontARB:         oneDecimal(r.FrontARB),
		RearARB:          oneDecimal(r.RearARB),
	}
}
