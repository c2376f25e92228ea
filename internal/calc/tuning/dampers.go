package tuning

// DamperPreset holds the game-calibrated coefficients for one suspension class.
type DamperPreset struct {
	Divisor          float64 `json:"divisor"`
	CompressionRatio float64 `json:"compression_ratio"`
	Min              float64 `json:"min"`
	Max              float64 `json:"max"`
}

// CompressionFloor is the lower clamp for compression. Offroad dampers keep
// the rebound floor, every other class may go down to half of it.
func (p DamperPreset) CompressionFloor(s Suspension) float64 {
	if s == SuspensionOffroad {
		return p.Min
	}
	return p.Min / 2
}

var damperPresets = map[Suspension]DamperPreset{
	SuspensionOffroad: {Divisor: 15.0, CompressionRatio: 0.6, Min: 1.0, Max: 10.0},
	SuspensionRacing:  {Divisor: 16.5, CompressionRatio: 0.7, Min: 3.0, Max: 20.0},
	SuspensionStock:   {Divisor: 17.5, CompressionRatio: 0.7, Min: 1.0, Max: 20.0},
}

// PresetFor returns the damper preset for s. Unknown classes use stock.
func PresetFor(s Suspension) DamperPreset {
	if p, ok := damperPresets[s]; ok {
		return p
	}
	return damperPresets[SuspensionStock]
}

type dampers struct {
	FrontRebound     float64
	RearRebound      float64
	FrontCompression float64
	RearCompression  float64
}

func deriveDampers(front, rear float64, s Suspension) dampers {
	p := PresetFor(s)
	floor := p.CompressionFloor(s)

	frontRebound := clamp(front/p.Divisor, p.Min, p.Max)
	rearRebound := clamp(rear/p.Divisor, p.Min, p.Max)

	return dampers{
		FrontRebound:     frontRebound,
		RearRebound:      rearRebound,
		FrontCompression: clamp(frontRebound*p.CompressionRatio, floor, p.Max),
		RearCompression:  clamp(rearRebound*p.CompressionRatio, floor, p.Max),
	}
}
