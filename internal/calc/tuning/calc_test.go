package tuning

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func baseInput() Input {
	return Input{
		Weight:         1500,
		Balance:        0.5,
		FrontFreq:      2.0,
		RearBias:       0,
		Suspension:     SuspensionStock,
		Drive:          DriveAWDStock,
		Stiffness:      1,
		FrontSpringMin: 1,
		FrontSpringMax: 50,
		RearSpringMin:  1,
		RearSpringMax:  50,
	}
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	in := baseInput()

	rawFront, rawRear := sizeSprings(in.Weight, in.Balance, in.FrontFreq, in.RearBias)
	wantRaw := 375 * math.Pow(2*math.Pi*2, 2) / 1000
	if !approx(rawFront, wantRaw) || !approx(rawRear, wantRaw) {
		t.Fatalf("raw springs = %v/%v, want %v", rawFront, rawRear, wantRaw)
	}
	if math.Abs(rawFront-59.2) > 0.05 {
		t.Errorf("raw front spring = %v, want ~59.2", rawFront)
	}

	res := Calculate(in)

	if res.FrontSpring != 50 || res.RearSpring != 50 {
		t.Errorf("springs = %v/%v, want 50/50", res.FrontSpring, res.RearSpring)
	}
	wantRebound := 50 / 17.5
	if !approx(res.FrontRebound, wantRebound) || !approx(res.RearRebound, wantRebound) {
		t.Errorf("rebound = %v/%v, want %v", res.FrontRebound, res.RearRebound, wantRebound)
	}
	if !approx(res.FrontCompression, 2.0) || !approx(res.RearCompression, 2.0) {
		t.Errorf("compression = %v/%v, want 2.0", res.FrontCompression, res.RearCompression)
	}
	if res.FrontARB != 65 || res.RearARB != 65 {
		t.Errorf("arb = %v/%v, want 65/65", res.FrontARB, res.RearARB)
	}
}

func TestCalculate_UnknownDriveKeepsNeutralARB(t *testing.T) {
	in := baseInput()
	in.Drive = ""
	in.FrontSpringMax = 100
	in.RearSpringMax = 100

	res := Calculate(in)

	wantFront := neutralARB(res.FrontSpring, in.FrontSpringMin, in.FrontSpringMax)
	wantRear := neutralARB(res.RearSpring, in.RearSpringMin, in.RearSpringMax)
	if !approx(res.FrontARB, wantFront) || !approx(res.RearARB, wantRear) {
		t.Errorf("arb = %v/%v, want neutral %v/%v", res.FrontARB, res.RearARB, wantFront, wantRear)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	in := baseInput()
	in.FrontAero = true
	in.RearBias = 7.5
	in.Stiffness = 1.3
	in.FrontSpringMax = 400
	in.RearSpringMax = 400

	a := Calculate(in)
	b := Calculate(in)
	if a != b {
		t.Fatalf("Calculate not deterministic: %+v vs %+v", a, b)
	}
}

func TestCalculate_OutputsWithinRanges(t *testing.T) {
	suspensions := []Suspension{SuspensionStock, SuspensionRacing, SuspensionOffroad}
	drives := []Drive{DriveFWD, DriveRWD, DriveAWDStock, DriveAWDSwapped, "unknown"}
	weights := []float64{100, 900, 1500, 5000}
	balances := []float64{0.01, 0.35, 0.5, 0.65, 0.99}
	freqs := []float64{1.0, 2.5, 6.0}
	biases := []float64{-100, -20, 0, 35, 100}
	stiffness := []float64{0.1, 1, 10}

	for _, s := range suspensions {
		for _, d := range drives {
			for _, w := range weights {
				for _, bal := range balances {
					for _, f := range freqs {
						for _, bias := range biases {
							for _, k := range stiffness {
								in := Input{
									Weight:         w,
									Balance:        bal,
									FrontFreq:      f,
									RearBias:       bias,
									Suspension:     s,
									Drive:          d,
									FrontAero:      bal > 0.5,
									RearAero:       k > 1,
									Stiffness:      k,
									FrontSpringMin: 20,
									FrontSpringMax: 250,
									RearSpringMin:  15,
									RearSpringMax:  300,
								}
								checkRanges(t, in, Calculate(in))
							}
						}
					}
				}
			}
		}
	}
}

func checkRanges(t *testing.T, in Input, res Result) {
	t.Helper()
	p := PresetFor(in.Suspension)
	floor := p.CompressionFloor(in.Suspension)

	within := func(name string, v, lo, hi float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
			t.Errorf("%s = %v outside [%v, %v] for %+v", name, v, lo, hi, in)
		}
	}
	within("front spring", res.FrontSpring, in.FrontSpringMin, in.FrontSpringMax)
	within("rear spring", res.RearSpring, in.RearSpringMin, in.RearSpringMax)
	within("front rebound", res.FrontRebound, p.Min, p.Max)
	within("rear rebound", res.RearRebound, p.Min, p.Max)
	within("front compression", res.FrontCompression, floor, p.Max)
	within("rear compression", res.RearCompression, floor, p.Max)
	within("front arb", res.FrontARB, ARBMin, ARBMax)
	within("rear arb", res.RearARB, ARBMin, ARBMax)
}

func TestSizeSprings_MonotonicInWeight(t *testing.T) {
	prevFront, prevRear := 0.0, 0.0
	for w := 100.0; w <= 5000; w += 100 {
		front, rear := sizeSprings(w, 0.55, 2.2, 10)
		if front < prevFront || rear < prevRear {
			t.Fatalf("weight %v: springs %v/%v decreased from %v/%v", w, front, rear, prevFront, prevRear)
		}
		prevFront, prevRear = front, rear
	}
}

func TestScaleSprings_MonotonicInStiffness(t *testing.T) {
	in := baseInput()
	prevFront, prevRear := 0.0, 0.0
	for k := 0.1; k <= 10; k += 0.1 {
		in.Stiffness = k
		front, rear := scaleSprings(59.2, 48.1, in)
		if front < prevFront || rear < prevRear {
			t.Fatalf("stiffness %v: springs %v/%v decreased from %v/%v", k, front, rear, prevFront, prevRear)
		}
		prevFront, prevRear = front, rear
	}
}

func TestScaleSprings_AeroBoost(t *testing.T) {
	in := baseInput()
	plainFront, plainRear := scaleSprings(60, 40, in)

	in.FrontAero = true
	front, rear := scaleSprings(60, 40, in)
	if !(front > plainFront) {
		t.Fatalf("front aero did not increase spring: %v vs %v", front, plainFront)
	}
	if !approx(front, plainFront*FrontAeroBoost) {
		t.Errorf("front = %v, want %v", front, plainFront*FrontAeroBoost)
	}
	if rear != plainRear {
		t.Errorf("front aero changed rear spring: %v vs %v", rear, plainRear)
	}

	in.FrontAero = false
	in.RearAero = true
	_, rear = scaleSprings(60, 40, in)
	if !approx(rear, plainRear*RearAeroBoost) {
		t.Errorf("rear = %v, want %v", rear, plainRear*RearAeroBoost)
	}
}

func TestSizeSprings_RearBias(t *testing.T) {
	front, rear := sizeSprings(1000, 0.5, 2.0, 100)
	// doubling the rear frequency quadruples the rate at equal mass
	if !approx(rear, front*4) {
		t.Errorf("rear = %v, want %v", rear, front*4)
	}

	_, rear = sizeSprings(1000, 0.5, 2.0, -100)
	if rear != 0 {
		t.Errorf("rear with -100%% bias = %v, want 0", rear)
	}
}
