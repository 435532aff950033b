package stackup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffimp/internal/domain"
	"diffimp/internal/stackup"
)

func generate(t *testing.T, n int) domain.Stackup {
	t.Helper()
	s, err := stackup.Generate(n, stackup.DefaultTemplates())
	require.NoError(t, err)
	return s
}

func TestSetField_NumericAcceptsBothSeparators(t *testing.T) {
	a := generate(t, 4)
	b := generate(t, 4)

	require.NoError(t, stackup.SetField(&a, 2, "thickness", "0,2"))
	require.NoError(t, stackup.SetField(&b, 2, "Thickness", "0.2"))
	assert.Equal(t, a.Layers[2].ThicknessMM, b.Layers[2].ThicknessMM)
	assert.Equal(t, stackup.TotalThickness(a), stackup.TotalThickness(b))

	require.NoError(t, stackup.SetField(&a, 2, "dk", "3,9"))
	assert.Equal(t, 3.9, a.Layers[2].Er)
}

func TestSetField_EmptyClears(t *testing.T) {
	s := generate(t, 2)
	require.NoError(t, stackup.SetField(&s, 2, "er", ""))
	assert.Zero(t, s.Layers[2].Er)
}

func TestSetField_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		index int
		field string
		value string
	}{
		{"non-numeric thickness", 2, "thickness", "thick"},
		{"er on copper", 1, "er", "4.0"},
		{"copper as core", 1, "class", "Core"},
		{"dielectric as signal", 2, "class", "Signal"},
		{"mask as plane", 0, "class", "Plane"},
		{"unknown field", 1, "colour", "red"},
		{"blank name", 1, "name", "   "},
		{"index past end", 99, "name", "x"},
		{"negative index", -1, "name", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := generate(t, 4)
			before := s.Clone()
			err := stackup.SetField(&s, tc.index, tc.field, tc.value)
			var ive *domain.InputValidationError
			require.ErrorAs(t, err, &ive)
			assert.NotEmpty(t, ive.Field)
			assert.Equal(t, before, s)
		})
	}
}

func TestSetField_ClassAndName(t *testing.T) {
	s := generate(t, 4)
	require.NoError(t, stackup.SetField(&s, 3, "class", "signal"))
	assert.Equal(t, domain.ClassSignal, s.Layers[3].Class)

	require.NoError(t, stackup.SetField(&s, 4, "class", "core"))
	assert.Equal(t, domain.ClassCore, s.Layers[4].Class)

	require.NoError(t, stackup.SetField(&s, 1, "name", "  L1 GND  "))
	assert.Equal(t, "L1 GND", s.Layers[1].Name)
	// Renaming does not move the layer.
	assert.Equal(t, domain.PositionTop, s.Layers[1].Position)
}

func TestTotalThickness(t *testing.T) {
	s := generate(t, 4)
	// 2 masks + 4 copper + 1 core + 2 prepregs
	want := 2*0.01 + 4*0.018 + 0.51 + 2*0.15
	assert.InDelta(t, want, stackup.TotalThickness(s), 1e-12)
}

func TestTotalThicknessText_SeparatorInvariant(t *testing.T) {
	comma := stackup.TotalThicknessText([]string{"0,15", "0,018", "", "abc"})
	dot := stackup.TotalThicknessText([]string{"0.15", "0.018", "", "abc"})
	assert.Equal(t, comma, dot)
	assert.InDelta(t, 0.168, dot, 1e-12)
}

func TestSignalLayerNames(t *testing.T) {
	s := generate(t, 6)
	assert.Equal(t, []string{
		"1. Top Layer", "3. Inner Layer 2", "4. Inner Layer 3", "6. Bottom Layer",
	}, stackup.SignalLayerNames(s))
}

func TestReselect(t *testing.T) {
	s := generate(t, 4)

	assert.Equal(t, "4. Bottom Layer", stackup.Reselect(s, "4. Bottom Layer"))
	assert.Equal(t, "1. Top Layer", stackup.Reselect(s, "gone"))
	assert.Equal(t, "1. Top Layer", stackup.Reselect(s, ""))

	// A plane name is not a valid selection.
	assert.Equal(t, "1. Top Layer", stackup.Reselect(s, "2. Inner Layer 1"))

	for i := range s.Layers {
		if s.Layers[i].Class == domain.ClassSignal {
			s.Layers[i].Class = domain.ClassPlane
		}
	}
	assert.Equal(t, "", stackup.Reselect(s, "1. Top Layer"))
}

func TestIndexOf(t *testing.T) {
	s := generate(t, 2)
	assert.Equal(t, 1, stackup.IndexOf(s, "1. Top Layer"))
	assert.Equal(t, 3, stackup.IndexOf(s, "2. Bottom Layer"))
	assert.Equal(t, -1, stackup.IndexOf(s, "missing"))
	assert.Equal(t, -1, stackup.IndexOf(s, ""))
}
