package tuning

import "math"

// Aero packages add downforce the springs have to carry.
const (
	FrontAeroBoost = 1.15
	RearAeroBoost  = 1.15
)

// sizeSprings returns raw spring rates for the target ride frequencies.
// Each axle's sprung mass is taken as half of its static weight share.
func sizeSprings(weight, balance, frontFreq, rearBias float64) (front, rear float64) {
	frontMass := weight * balance / 2
	rearMass := weight * (1 - balance) / 2
	rearFreq := frontFreq * (1 + rearBias/100)
	return springRate(frontMass, frontFreq), springRate(rearMass, rearFreq)
}

func springRate(mass, freq float64) float64 {
	w := 2 * math.Pi * freq
	return mass * w * w / 1000
}

// scaleSprings applies aero boosts and the global stiffness multiplier.
func scaleSprings(front, rear float64, in Input) (float64, float64) {
	if in.FrontAero {
		front *= FrontAeroBoost
	}
	if in.RearAero {
		rear *= RearAeroBoost
	}
	return front * in.Stiffness, rear * in.Stiffness
}

func adjustSprings(front, rear float64, in Input) (float64, float64) {
	front, rear = scaleSprings(front, rear, in)
	return clamp(front, in.FrontSpringMin, in.FrontSpringMax),
		clamp(rear, in.RearSpringMin, in.RearSpringMax)
}
