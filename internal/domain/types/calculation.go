package types

import "time"

// GeometryInput is the trace geometry and target as text, before parsing.
type GeometryInput struct {
	W            string // trace width, mm
	Gap          string // gap between the pair, mm
	S            string // lateral ground spacing, mm
	Target       string // target differential impedance, ohms
	TolerancePct string // ± percent
}

// Geometry is GeometryInput after validation.
type Geometry struct {
	W            float64
	Gap          float64
	S            float64
	Target       float64
	TolerancePct float64
}

// Regime is the trace-width formula family chosen by W/H.
type Regime int

const (
	RegimeWide Regime = iota
	RegimeNarrow
)

// String returns the string form of the regime.
func (r Regime) String() string {
	if r == RegimeNarrow {
		return "narrow"
	}
	return "wide"
}

// CalculationResult is the outcome of one impedance calculation.
type CalculationResult struct {
	ID             string
	Layer          string
	ReferencePlane string

	Zdiff float64 // ohms
	Pass  bool
	Lower float64
	Upper float64

	Regime          Regime
	WOverH          float64
	CoplanarApplied bool

	H  float64 // mm
	T  float64 // mm
	Er float64

	Geometry      Geometry
	StackupDigest string
	CreatedAt     time.Time
}
