package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffimp/internal/digest"
	"diffimp/internal/stackup"
)

func TestStackup_StableAndShort(t *testing.T) {
	s, err := stackup.Generate(4, stackup.DefaultTemplates())
	require.NoError(t, err)

	a := digest.Stackup(s)
	assert.Len(t, a, 20)
	assert.Equal(t, a, digest.Stackup(s.Clone()))
}

func TestStackup_ChangesWithAnyField(t *testing.T) {
	base, err := stackup.Generate(4, stackup.DefaultTemplates())
	require.NoError(t, err)
	want := digest.Stackup(base)

	edits := []struct{ field, value string }{
		{stackup.FieldName, "Renamed"},
		{stackup.FieldThickness, "0,16"},
		{stackup.FieldEr, "4.2"},
		{stackup.FieldClass, "Core"},
	}
	for _, e := range edits {
		s := base.Clone()
		require.NoError(t, stackup.SetField(&s, 2, e.field, e.value))
		assert.NotEqual(t, want, digest.Stackup(s), e.field)
	}
}

func TestStackup_NameBoundaries(t *testing.T) {
	a, err := stackup.Generate(2, stackup.DefaultTemplates())
	require.NoError(t, err)
	b := a.Clone()

	a.Layers[0].Name, a.Layers[1].Name = "ab", "c"
	b.Layers[0].Name, b.Layers[1].Name = "a", "bc"
	assert.NotEqual(t, digest.Stackup(a), digest.Stackup(b))
}
