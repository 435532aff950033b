package calculation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"diffimp/internal/digest"
	"diffimp/internal/domain"
	"diffimp/internal/services/calculation"
	"diffimp/internal/stackup"
)

var referenceGeometry = domain.GeometryInput{
	W: "0.2", Gap: "0.2", S: "1.0", Target: "100", TolerancePct: "10",
}

func fourLayer(t *testing.T) domain.Stackup {
	t.Helper()
	s, err := stackup.Generate(4, stackup.DefaultTemplates())
	require.NoError(t, err)
	return s
}

func TestCalculate_FourLayerTop(t *testing.T) {
	svc := calculation.New(zaptest.NewLogger(t))
	st := fourLayer(t)

	res, err := svc.Calculate(context.Background(), st, "1. Top Layer", referenceGeometry)
	require.NoError(t, err)

	assert.Equal(t, "1. Top Layer", res.Layer)
	assert.Equal(t, "2. Inner Layer 1", res.ReferencePlane)
	assert.InDelta(t, 0.15, res.H, 1e-12)
	assert.InDelta(t, 4.1, res.Er, 1e-12)
	assert.InDelta(t, 0.018, res.T, 1e-12)
	assert.Equal(t, domain.RegimeWide, res.Regime)
	assert.False(t, res.CoplanarApplied)
	assert.InDelta(t, 103.88342635048528, res.Zdiff, 1e-9)
	assert.True(t, res.Pass)
	assert.Equal(t, digest.Stackup(st), res.StackupDigest)
	assert.False(t, res.CreatedAt.IsZero())
	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err)
}

func TestCalculate_BottomMirrorsTop(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)

	top, err := svc.Calculate(context.Background(), st, "1. Top Layer", referenceGeometry)
	require.NoError(t, err)
	bottom, err := svc.Calculate(context.Background(), st, "4. Bottom Layer", referenceGeometry)
	require.NoError(t, err)

	assert.Equal(t, "3. Inner Layer 2", bottom.ReferencePlane)
	assert.Equal(t, top.Zdiff, bottom.Zdiff)
	assert.NotEqual(t, top.ID, bottom.ID)
}

func TestCalculate_InvalidSelection(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)

	for _, layer := range []string{"", "missing", "2. Inner Layer 1", "Dielectric 2"} {
		_, err := svc.Calculate(context.Background(), st, layer, referenceGeometry)
		var ive *domain.InputValidationError
		require.ErrorAs(t, err, &ive, layer)
		assert.Equal(t, "Signal Layer", ive.Field)
	}
}

func TestCalculate_ZeroCopperThickness(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)
	require.NoError(t, stackup.SetField(&st, 1, stackup.FieldThickness, ""))

	_, err := svc.Calculate(context.Background(), st, "1. Top Layer", referenceGeometry)
	var ive *domain.InputValidationError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "1. Top Layer Thickness (T)", ive.Field)
}

func TestCalculate_BadGeometry(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	in := referenceGeometry
	in.Gap = "abc"

	_, err := svc.Calculate(context.Background(), fourLayer(t), "1. Top Layer", in)
	var ive *domain.InputValidationError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, "Gap Between Traces (Gap)", ive.Field)
}

func TestCalculate_NoPlanes(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)
	require.NoError(t, stackup.SetField(&st, 3, stackup.FieldClass, "Signal"))
	require.NoError(t, stackup.SetField(&st, 5, stackup.FieldClass, "Signal"))

	for _, layer := range stackup.SignalLayerNames(st) {
		_, err := svc.Calculate(context.Background(), st, layer, referenceGeometry)
		var sse *domain.StackupStructureError
		require.ErrorAs(t, err, &sse, layer)
	}
}

func TestCalculate_ZeroDielectric(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)
	require.NoError(t, stackup.SetField(&st, 2, stackup.FieldEr, "0"))

	_, err := svc.Calculate(context.Background(), st, "1. Top Layer", referenceGeometry)
	var sse *domain.StackupStructureError
	require.ErrorAs(t, err, &sse)
	assert.Equal(t, "Dielectric 2", sse.Layer)
}

func TestCalculate_CanceledContext(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Calculate(ctx, fourLayer(t), "1. Top Layer", referenceGeometry)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculate_DoesNotMutateStackup(t *testing.T) {
	svc := calculation.New(zap.NewNop())
	st := fourLayer(t)
	before := st.Clone()

	_, err := svc.Calculate(context.Background(), st, "1. Top Layer", referenceGeometry)
	require.NoError(t, err)
	assert.Equal(t, before, st)
}
