package types

import "slices"

// Layer is one physical stratum of the stackup.
type Layer struct {
	Name        string
	Class       LayerClass
	Kind        LayerKind
	Position    Position
	ThicknessMM float64 // mm; 0 when unset
	Er          float64 // relative permittivity; 0 when unset or copper
}

// IsCopper reports whether the layer is a copper layer.
func (l Layer) IsCopper() bool { return l.Kind == KindCopper }

// SupportedCopperCounts lists the copper-layer counts a stackup may be built for.
var SupportedCopperCounts = []int{2, 4, 6, 8, 10, 12, 14, 16}

// IsSupportedCopperCount reports whether n is in SupportedCopperCounts.
func IsSupportedCopperCount(n int) bool {
	return slices.Contains(SupportedCopperCounts, n)
}

// Stackup is the ordered layer sequence, outer (top) to inner to outer (bottom).
type Stackup struct {
	CopperCount int
	Layers      []Layer
}

// Clone returns a copy that shares no layer storage with s.
func (s Stackup) Clone() Stackup {
	return Stackup{CopperCount: s.CopperCount, Layers: slices.Clone(s.Layers)}
}

// StackupRow is one layer as exchanged with the CSV collaborator. All values
// are text exactly as read or to be written.
type StackupRow struct {
	Index     string
	Name      string
	Class     string
	Thickness string
	Er        string
	Kind      string

	// HasEr and HasKind are false when the source row stopped short of the
	// column.
	HasEr   bool
	HasKind bool
}
