package solver

import (
	"fmt"

	"diffimp/internal/domain"
	"diffimp/internal/util/decimal"
)

// Field labels used in validation errors.
const (
	FieldW         = "Trace Width (W)"
	FieldGap       = "Gap Between Traces (Gap)"
	FieldS         = "Space to Ground (S)"
	FieldTarget    = "Target Impedance (Z0)"
	FieldTolerance = "Tolerance (± %)"
)

// Stack is the dielectric and copper data the formulas need.
type Stack struct {
	H  float64 // dielectric height to the reference plane, mm
	T  float64 // copper (trace) thickness, mm
	Er float64
}

// Solution is a graded impedance.
type Solution struct {
	Zdiff           float64
	Lower           float64
	Upper           float64
	Pass            bool
	Regime          domain.Regime
	WOverH          float64
	CoplanarApplied bool
}

// ParseGeometry validates the text geometry. W, Gap, S and Target must be
// positive; tolerance may be zero.
func ParseGeometry(in domain.GeometryInput) (domain.Geometry, error) {
	var g domain.Geometry
	var err error
	if g.W, err = positive(FieldW, in.W); err != nil {
		return domain.Geometry{}, err
	}
	if g.Gap, err = positive(FieldGap, in.Gap); err != nil {
		return domain.Geometry{}, err
	}
	if g.S, err = positive(FieldS, in.S); err != nil {
		return domain.Geometry{}, err
	}
	if g.Target, err = positive(FieldTarget, in.Target); err != nil {
		return domain.Geometry{}, err
	}
	if g.TolerancePct, err = number(FieldTolerance, in.TolerancePct); err != nil {
		return domain.Geometry{}, err
	}
	if g.TolerancePct < 0 {
		return domain.Geometry{}, &domain.InputValidationError{
			Field:  FieldTolerance,
			Reason: "percentage cannot be negative",
		}
	}
	return g, nil
}

func number(field, text string) (float64, error) {
	v, err := decimal.Parse(text)
	if err != nil {
		return 0, &domain.InputValidationError{
			Field:  field,
			Reason: fmt.Sprintf("please enter a valid numeric value (e.g., 0.15 or 0,15): %v", err),
		}
	}
	return v, nil
}

func positive(field, text string) (float64, error) {
	v, err := number(field, text)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &domain.InputValidationError{Field: field, Reason: "must be greater than zero"}
	}
	return v, nil
}

// Solve computes and grades Zdiff for geometry g over stack st.
func Solve(g domain.Geometry, st Stack) (Solution, error) {
	if st.H <= 0 || st.Er <= 0 {
		return Solution{}, &domain.InputValidationError{
			Field:  "Thickness (H) / Dk (Er)",
			Reason: fmt.Sprintf("H=%.3f or Er=%.2f is zero or negative; check stackup parameters", st.H, st.Er),
		}
	}
	if st.T <= 0 {
		return Solution{}, &domain.InputValidationError{
			Field:  "Thickness (T)",
			Reason: "must be greater than zero",
		}
	}

	sol := Solution{WOverH: g.W / st.H}
	if sol.WOverH >= 1.0 {
		sol.Regime = domain.RegimeWide
		sol.Zdiff = Wide(g.W, g.Gap, st.T, st.H, st.Er)
	} else {
		sol.Regime = domain.RegimeNarrow
		sol.Zdiff = Narrow(g.W, g.Gap, st.T, st.H, st.Er)
	}

	if g.S < st.H {
		sol.CoplanarApplied = true
		sol.Zdiff *= CoplanarFactor(g.S, g.W)
	}

	sol.Lower, sol.Upper = Limits(g.Target, g.TolerancePct)
	sol.Pass = sol.Lower <= sol.Zdiff && sol.Zdiff <= sol.Upper
	return sol, nil
}
