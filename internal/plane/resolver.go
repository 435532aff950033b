package plane

import (
	"fmt"

	"diffimp/internal/domain"
)

// Direction is the side of the signal layer a plane was found on.
type Direction int

const (
	Below Direction = iota // toward the bottom of the stack
	Above
)

// String returns the string form of the direction.
func (d Direction) String() string {
	if d == Above {
		return "above"
	}
	return "below"
}

// Reference is the resolved plane and the dielectric aggregate up to it.
type Reference struct {
	H          float64 // mm
	Er         float64
	Plane      string
	PlaneIndex int
	Direction  Direction
}

// candidate is the outcome of scanning one direction.
type candidate struct {
	found bool
	ref   Reference
}

// usable reports whether the candidate can serve as the reference. A found
// plane with an empty span has H == 0 and is not usable.
func (c candidate) usable() bool { return c.found && c.ref.H > 0 }

// Resolve returns the governing reference plane for the copper layer at
// signalIndex.
func Resolve(s domain.Stackup, signalIndex int) (Reference, error) {
	if signalIndex < 0 || signalIndex >= len(s.Layers) {
		return Reference{}, &domain.InputValidationError{
			Field:  "layer index",
			Reason: fmt.Sprintf("%d is outside 0..%d", signalIndex, len(s.Layers)-1),
		}
	}
	signal := s.Layers[signalIndex]
	if !signal.IsCopper() {
		return Reference{}, &domain.InputValidationError{
			Field:  signal.Name,
			Reason: fmt.Sprintf("a %s layer cannot carry traces", signal.Kind),
		}
	}

	below, err := search(s, signalIndex, Below)
	if err != nil {
		return Reference{}, err
	}
	above, err := search(s, signalIndex, Above)
	if err != nil {
		return Reference{}, err
	}

	switch signal.Position {
	case domain.PositionTop:
		if below.usable() {
			return below.ref, nil
		}
		return Reference{}, &domain.StackupStructureError{
			Layer:  signal.Name,
			Reason: "no Plane layer found immediately below the top layer",
		}
	case domain.PositionBottom:
		if above.usable() {
			return above.ref, nil
		}
		return Reference{}, &domain.StackupStructureError{
			Layer:  signal.Name,
			Reason: "no Plane layer found immediately above the bottom layer",
		}
	}

	switch {
	case below.usable() && above.usable():
		if below.ref.H <= above.ref.H {
			return below.ref, nil
		}
		return above.ref, nil
	case below.usable():
		return below.ref, nil
	case above.usable():
		return above.ref, nil
	}
	return Reference{}, &domain.StackupStructureError{
		Layer:  signal.Name,
		Reason: "inner layer has no Plane layer above or below",
	}
}

// search scans from the signal layer in one direction and, if the first
// copper layer reached is a Plane, aggregates the span up to it.
func search(s domain.Stackup, signalIndex int, dir Direction) (candidate, error) {
	step := 1
	if dir == Above {
		step = -1
	}

	planeIndex := -1
	for i := signalIndex + step; i >= 0 && i < len(s.Layers); i += step {
		if !s.Layers[i].IsCopper() {
			continue
		}
		if s.Layers[i].Class == domain.ClassPlane {
			planeIndex = i
		}
		break
	}
	if planeIndex < 0 {
		return candidate{}, nil
	}

	h, er, err := aggregate(s, signalIndex, planeIndex, step)
	if err != nil {
		return candidate{}, err
	}
	return candidate{
		found: true,
		ref: Reference{
			H:          h,
			Er:         er,
			Plane:      s.Layers[planeIndex].Name,
			PlaneIndex: planeIndex,
			Direction:  dir,
		},
	}, nil
}

// aggregate sums thickness and thickness-weighted Dk over the layers strictly
// between signalIndex and planeIndex.
//
// An empty span yields (0, 1.0). The 1.0 is a compatibility default with no
// physical basis; H == 0 keeps such a span from ever being selected.
func aggregate(s domain.Stackup, signalIndex, planeIndex, step int) (h, er float64, err error) {
	var total, weighted float64
	for i := signalIndex + step; i != planeIndex; i += step {
		l := s.Layers[i]
		// search stops at the first copper layer, so this only fires if a
		// caller hands aggregate a span that crosses copper.
		if l.IsCopper() {
			return 0, 0, &domain.StackupStructureError{
				Layer: l.Name,
				Reason: fmt.Sprintf(
					"another signal layer found between signal layer %s and the Plane",
					s.Layers[signalIndex].Name,
				),
			}
		}
		if l.ThicknessMM <= 0 || l.Er <= 0 {
			return 0, 0, &domain.StackupStructureError{
				Layer:  l.Name,
				Reason: "Thickness (mm)/Dk (Er) value is invalid or zero/negative",
			}
		}
		total += l.ThicknessMM
		weighted += l.ThicknessMM * l.Er
	}
	if total == 0 {
		return 0, 1.0, nil
	}
	return total, weighted / total, nil
}
