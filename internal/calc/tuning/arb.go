package tuning

const (
	ARBMin = 1.0
	ARBMax = 65.0
)

type Axle int

const (
	Front Axle = iota
	Rear
)

// ARBCorrection stiffens one axle as a multiple of the other.
type ARBCorrection struct {
	Axle   Axle    // axle being overridden
	Factor float64 // multiple of the opposite axle's neutral value
}

var arbCorrections = map[Drive]ARBCorrection{
	DriveFWD:        {Axle: Rear, Factor: 1.5},
	DriveRWD:        {Axle: Front, Factor: 1.1},
	DriveAWDStock:   {Axle: Rear, Factor: 1.4},
	DriveAWDSwapped: {Axle: Rear, Factor: 1.9},
}

// CorrectionFor reports the drive-type correction, if d has one.
func CorrectionFor(d Drive) (ARBCorrection, bool) {
	c, ok := arbCorrections[d]
	return c, ok
}

// neutralARB maps a spring's position within its bounds linearly onto the
// ARB range. Degenerate bounds fall back to the middle of the range.
func neutralARB(spring, lo, hi float64) float64 {
	if hi <= lo {
		return (ARBMin + ARBMax) / 2
	}
	ratio := (spring - lo) / (hi - lo)
	return ratio*(ARBMax-ARBMin) + ARBMin
}

func balanceARBs(front, rear float64, in Input) (float64, float64) {
	frontARB := neutralARB(front, in.FrontSpringMin, in.FrontSpringMax)
	rearARB := neutralARB(rear, in.RearSpringMin, in.RearSpringMax)

	if c, ok := CorrectionFor(in.Drive); ok {
		switch c.Axle {
		case Front:
			frontARB = rearARB * c.Factor
		case Rear:
			rearARB = frontARB * c.Factor
		}
	}

	return clamp(frontARB, ARBMin, ARBMax), clamp(rearARB, ARBMin, ARBMax)
}
