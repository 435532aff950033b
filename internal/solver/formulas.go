package solver

import "math"

// coupling is the edge-coupling factor shared by both regimes.
func coupling(gap, h float64) float64 {
	return 1.0 - 0.48*math.Exp(-0.96*gap/h)
}

// Wide returns Zdiff for traces at least as wide as their height above the
// plane.
func Wide(w, gap, t, h, er float64) float64 {
	z0 := (87.0 / math.Sqrt(er+1.41)) * math.Log((5.98*h)/(0.8*w+t))
	return 2.0 * z0 * coupling(gap, h)
}

// Narrow returns Zdiff for traces narrower than their height above the plane.
func Narrow(w, gap, t, h, er float64) float64 {
	wEff := w + (t/math.Pi)*(1.0+math.Log((4.0*math.Pi*w)/t+1.0))
	u := wEff / h
	erEff := (er+1.0)/2.0 + (er-1.0)/2.0*math.Pow(1.0+12.0/u, -0.5)
	z0 := (60.0 / math.Sqrt(erEff)) * math.Log(8.0/u+u/4.0)
	return 2.0 * z0 * coupling(gap, h)
}

// CoplanarFactor is the CPWG correction for lateral ground at spacing s.
func CoplanarFactor(s, w float64) float64 {
	return math.Pow(s/(s+0.5*w), 0.1)
}

// Limits returns the inclusive acceptance band for target ± tolPct percent.
func Limits(target, tolPct float64) (lower, upper float64) {
	f := tolPct / 100.0
	return target * (1.0 - f), target * (1.0 + f)
}
