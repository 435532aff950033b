package stackup_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"diffimp/internal/domain"
	svc "diffimp/internal/services/stackup"
	model "diffimp/internal/stackup"
	"diffimp/internal/store"
)

func newService(t *testing.T) *svc.Service {
	t.Helper()
	return svc.New(store.NewFileStore(), model.DefaultTemplates(), zaptest.NewLogger(t))
}

func TestRegenerate_SelectsFirstSignal(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(6))

	assert.Equal(t, "1. Top Layer", s.Selected())
	assert.Equal(t, []string{"1. Top Layer", "3. Inner Layer 2", "4. Inner Layer 3", "6. Bottom Layer"}, s.SignalLayers())
	assert.Equal(t, 6, s.Stackup().CopperCount)
}

func TestRegenerate_Unsupported(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(4))
	before := s.Stackup()

	var ive *domain.InputValidationError
	require.ErrorAs(t, s.Regenerate(3), &ive)
	assert.Equal(t, before, s.Stackup())
}

func TestSelect(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(4))

	require.NoError(t, s.Select("4. Bottom Layer"))
	assert.Equal(t, "4. Bottom Layer", s.Selected())

	var ive *domain.InputValidationError
	require.ErrorAs(t, s.Select("2. Inner Layer 1"), &ive, "planes are not selectable")
	assert.Equal(t, "4. Bottom Layer", s.Selected())
}

func TestSetField_ReconcilesSelection(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(4))
	require.NoError(t, s.Select("4. Bottom Layer"))

	// Rename the selected layer: the selection falls back to the first signal.
	idx := model.IndexOf(s.Stackup(), "4. Bottom Layer")
	require.NoError(t, s.SetField(idx, "name", "BOT"))
	assert.Equal(t, "1. Top Layer", s.Selected())

	// Turning the only remaining named signal into a plane leaves BOT.
	require.NoError(t, s.SetField(model.IndexOf(s.Stackup(), "1. Top Layer"), "class", "Plane"))
	assert.Equal(t, "BOT", s.Selected())

	require.NoError(t, s.SetField(idx, "class", "Plane"))
	assert.Empty(t, s.Selected())
	assert.Empty(t, s.SignalLayers())
}

func TestSetField_RejectsWithoutMutating(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(4))
	before := s.Stackup()

	var ive *domain.InputValidationError
	require.ErrorAs(t, s.SetField(2, "thickness", "thin"), &ive)
	require.ErrorAs(t, s.SetField(1, "er", "4"), &ive)
	require.ErrorAs(t, s.SetField(99, "name", "x"), &ive)
	assert.Equal(t, before, s.Stackup())
}

func TestStackup_ReturnsCopy(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Regenerate(2))

	st := s.Stackup()
	st.Layers[0].Name = "mutated"
	assert.Equal(t, "Top Solder", s.Stackup().Layers[0].Name)
}

func TestExportImportLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.csv")

	a := newService(t)
	require.NoError(t, a.Regenerate(4))
	require.NoError(t, a.SetField(2, "thickness", "0,2"))
	require.NoError(t, a.Export(path))

	b := newService(t)
	require.NoError(t, b.Regenerate(4))
	require.NoError(t, b.Import(path))
	assert.Equal(t, a.Stackup(), b.Stackup())
	assert.InDelta(t, a.TotalThickness(), b.TotalThickness(), 1e-12)

	c := newService(t)
	require.NoError(t, c.Regenerate(8))
	var mismatch *domain.ImportSizeMismatchError
	require.ErrorAs(t, c.Import(path), &mismatch)
	assert.Equal(t, 8, c.Stackup().CopperCount)

	require.NoError(t, c.Load(path))
	assert.Equal(t, a.Stackup(), c.Stackup())
	assert.Equal(t, "1. Top Layer", c.Selected())
}
