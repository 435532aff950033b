package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"diffimp/internal/digest"
	"diffimp/internal/domain"
	"diffimp/internal/plane"
	"diffimp/internal/solver"
	"diffimp/internal/stackup"
)

// Service computes impedance results. It holds no per-request state.
type Service struct {
	log *zap.Logger
	now func() time.Time
}

var _ domain.CalculationService = (*Service)(nil)

// New returns a calculation service that logs to log.
func New(log *zap.Logger) *Service {
	return &Service{log: log, now: time.Now}
}

// Calculate grades the differential impedance of the pair routed on layer.
func (s *Service) Calculate(
	ctx context.Context,
	st domain.Stackup,
	layer string,
	in domain.GeometryInput,
) (domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CalculationResult{}, fmt.Errorf("calculate: %w", err)
	}

	res, err := s.calculate(st, layer, in)
	if err != nil {
		s.log.Warn("calculation failed", zap.String("layer", layer), zap.Error(err))
		return domain.CalculationResult{}, err
	}

	s.log.Info("calculation complete",
		zap.String("id", res.ID),
		zap.String("layer", res.Layer),
		zap.String("plane", res.ReferencePlane),
		zap.Float64("h_mm", res.H),
		zap.Float64("t_mm", res.T),
		zap.Float64("er", res.Er),
		zap.Stringer("regime", res.Regime),
		zap.Bool("coplanar", res.CoplanarApplied),
		zap.Float64("zdiff", res.Zdiff),
		zap.Bool("pass", res.Pass),
		zap.String("stackup", res.StackupDigest),
	)
	return res, nil
}

func (s *Service) calculate(st domain.Stackup, layer string, in domain.GeometryInput) (domain.CalculationResult, error) {
	idx := stackup.IndexOf(st, layer)
	if idx < 0 {
		return domain.CalculationResult{}, &domain.InputValidationError{
			Field:  "Signal Layer",
			Reason: "select a valid signal layer",
		}
	}
	signal := st.Layers[idx]
	if signal.Class != domain.ClassSignal {
		return domain.CalculationResult{}, &domain.InputValidationError{
			Field:  "Signal Layer",
			Reason: fmt.Sprintf("%s is a %s layer; select a valid signal layer", signal.Name, signal.Class),
		}
	}
	if signal.ThicknessMM <= 0 {
		return domain.CalculationResult{}, &domain.InputValidationError{
			Field:  signal.Name + " Thickness (T)",
			Reason: "copper thickness must be greater than zero",
		}
	}

	g, err := solver.ParseGeometry(in)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	ref, err := plane.Resolve(st, idx)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	s.log.Debug("reference plane resolved",
		zap.String("layer", signal.Name),
		zap.String("plane", ref.Plane),
		zap.Stringer("direction", ref.Direction),
		zap.Float64("h_mm", ref.H),
		zap.Float64("er", ref.Er),
	)

	sol, err := solver.Solve(g, solver.Stack{H: ref.H, T: signal.ThicknessMM, Er: ref.Er})
	if err != nil {
		return domain.CalculationResult{}, err
	}

	return domain.CalculationResult{
		ID:              uuid.NewString(),
		Layer:           signal.Name,
		ReferencePlane:  ref.Plane,
		Zdiff:           sol.Zdiff,
		Pass:            sol.Pass,
		Lower:           sol.Lower,
		Upper:           sol.Upper,
		Regime:          sol.Regime,
		WOverH:          sol.WOverH,
		CoplanarApplied: sol.CoplanarApplied,
		H:               ref.H,
		T:               signal.ThicknessMM,
		Er:              ref.Er,
		Geometry:        g,
		StackupDigest:   digest.Stackup(st),
		CreatedAt:       s.now(),
	}, nil
}
