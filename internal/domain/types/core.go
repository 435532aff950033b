package types

import "strings"

// LayerClass is the electrical role of a layer in the stackup.
type LayerClass string

const (
	ClassSignal     LayerClass = "Signal"
	ClassPlane      LayerClass = "Plane"
	ClassSolderMask LayerClass = "Solder Mask"
	ClassCore       LayerClass = "Core"
	ClassPrepreg    LayerClass = "Prepreg"
)

// String returns the string form of the class.
func (c LayerClass) String() string { return string(c) }

// ParseLayerClass maps user or file text onto a LayerClass. Matching ignores
// case and the space in "Solder Mask".
func ParseLayerClass(s string) (LayerClass, bool) {
	switch squash(s) {
	case "signal":
		return ClassSignal, true
	case "plane":
		return ClassPlane, true
	case "soldermask":
		return ClassSolderMask, true
	case "core":
		return ClassCore, true
	case "prepreg":
		return ClassPrepreg, true
	}
	return "", false
}

// LayerKind is the physical material category of a layer.
type LayerKind string

const (
	KindCopper     LayerKind = "Copper"
	KindDielectric LayerKind = "Dielectric"
	KindSolderMask LayerKind = "Solder Mask"
)

// String returns the string form of the kind.
func (k LayerKind) String() string { return string(k) }

// ParseLayerKind maps file text onto a LayerKind. "Core" and "Prepreg" are
// accepted as Dielectric so files that record the material name still load.
func ParseLayerKind(s string) (LayerKind, bool) {
	switch squash(s) {
	case "copper":
		return KindCopper, true
	case "dielectric", "core", "prepreg":
		return KindDielectric, true
	case "soldermask":
		return KindSolderMask, true
	}
	return "", false
}

// AllowsClass reports whether a layer of kind k may carry class c.
func (k LayerKind) AllowsClass(c LayerClass) bool {
	switch k {
	case KindCopper:
		return c == ClassSignal || c == ClassPlane
	case KindDielectric:
		return c == ClassCore || c == ClassPrepreg
	case KindSolderMask:
		return c == ClassSolderMask
	}
	return false
}

// HasDielectricConstant reports whether Er is meaningful for kind k.
func (k LayerKind) HasDielectricConstant() bool {
	return k == KindDielectric || k == KindSolderMask
}

// Position locates a copper layer within the stack.
type Position int

const (
	PositionNone Position = iota // non-copper layers
	PositionTop
	PositionInner
	PositionBottom
)

// String returns the string form of the position.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionInner:
		return "inner"
	case PositionBottom:
		return "bottom"
	}
	return "none"
}

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
