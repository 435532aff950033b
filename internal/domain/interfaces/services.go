package interfaces

import (
	"context"

	domaintypes "diffimp/internal/domain/types"
)

// StackupService owns the session stackup and the selected signal layer.
// Callers serialize access; it is not safe for concurrent use.
type StackupService interface {
	Regenerate(copperCount int) error
	SetField(index int, field, value string) error
	Select(name string) error
	Selected() string
	SignalLayers() []string
	TotalThickness() float64
	Stackup() domaintypes.Stackup

	Load(path string) error
	Import(path string) error
	Export(path string) error
}

// CalculationService computes and grades differential impedance for one
// signal layer of a stackup.
type CalculationService interface {
	Calculate(
		ctx context.Context,
		stackup domaintypes.Stackup,
		layer string,
		input domaintypes.GeometryInput,
	) (domaintypes.CalculationResult, error)
}
