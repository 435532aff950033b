package interfaces

import domaintypes "diffimp/internal/domain/types"

// StackupStore persists stackups as CSV files, the only on-disk format.
type StackupStore interface {
	SaveStackup(path string, stackup domaintypes.Stackup) error
	LoadStackup(path string) (domaintypes.Stackup, error)

	// ReadRows returns the data rows of a CSV file without interpreting them,
	// for importing into an existing stackup.
	ReadRows(path string) ([]domaintypes.StackupRow, error)
}
