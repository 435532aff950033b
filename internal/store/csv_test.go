package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffimp/internal/domain"
	"diffimp/internal/store"
)

func TestDecodeCSV_SkipsHeaderShortAndTotalRows(t *testing.T) {
	in := "Layer Number;Layer Name;Class;Thickness (mm);Dk (Er);Type\n" +
		"01;Top Solder;Solder Mask;0,01;3,5;Solder Mask\n" +
		"notes;only\n" +
		"02;1. Top Layer;Signal;0,018\n" +
		";Total PCB Thickness:;;0.566;mm\n"

	rows, err := store.DecodeCSV([]byte(in))
	require.NoError(t, err)

	want := []domain.StackupRow{
		{Index: "01", Name: "Top Solder", Class: "Solder Mask", Thickness: "0,01", Er: "3,5", Kind: "Solder Mask", HasEr: true, HasKind: true},
		{Index: "02", Name: "1. Top Layer", Class: "Signal", Thickness: "0,018"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestDecodeCSV_CommaFallback(t *testing.T) {
	in := "\ufeffLayer Number,Layer Name,Class,Thickness (mm),Dk (Er),Type\n" +
		"01,Top Solder,Solder Mask,0.01,3.5,Solder Mask\n"

	rows, err := store.DecodeCSV([]byte(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0.01", rows[0].Thickness)
	assert.Equal(t, "Solder Mask", rows[0].Kind)
}

func TestDecodeCSV_Empty(t *testing.T) {
	_, err := store.DecodeCSV(nil)
	require.ErrorIs(t, err, store.ErrNoRows)

	rows, err := store.DecodeCSV([]byte("Layer Number;Layer Name;Class;Thickness (mm);Dk (Er);Type\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEncodeCSV_QuotesDelimiterInNames(t *testing.T) {
	b, err := store.EncodeCSV([]domain.StackupRow{
		{Index: "01", Name: "L1; top", Class: "Signal", Thickness: "0,018", Kind: "Copper"},
	}, 0.018)
	require.NoError(t, err)

	rows, err := store.DecodeCSV(b)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "L1; top", rows[0].Name)
}
