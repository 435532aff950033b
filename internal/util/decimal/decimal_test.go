package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffimp/internal/util/decimal"
)

func TestParse_AcceptsBothSeparators(t *testing.T) {
	dot, err := decimal.Parse("0.15")
	require.NoError(t, err)
	comma, err := decimal.Parse(" 0,15 ")
	require.NoError(t, err)
	assert.Equal(t, dot, comma)
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1,2,3", "NaN", "Inf"} {
		_, err := decimal.Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseOptional_EmptyIsZero(t *testing.T) {
	v, err := decimal.ParseOptional("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = decimal.ParseOptional("x")
	assert.Error(t, err)
}

func TestSumLenient_SkipsGarbage(t *testing.T) {
	got := decimal.SumLenient([]string{"0,15", "0.15", "", "n/a", "1"})
	assert.InDelta(t, 1.3, got, 1e-12)
}

func TestFormat_RoundTrips(t *testing.T) {
	assert.Equal(t, "0.018", decimal.Format(0.018))
	assert.Equal(t, "0,018", decimal.FormatComma(0.018))
	assert.Equal(t, "4", decimal.Format(4))

	v, err := decimal.Parse(decimal.FormatComma(0.51))
	require.NoError(t, err)
	assert.Equal(t, 0.51, v)
}
