package stackup

import (
	"fmt"

	"diffimp/internal/domain"
)

// Template is the default thickness and permittivity of a layer type.
type Template struct {
	ThicknessMM float64
	Er          float64
}

// Templates holds the defaults applied to freshly generated layers.
type Templates struct {
	Copper     Template
	SolderMask Template
	Prepreg    Template
	Core       Template
}

// DefaultTemplates returns the stock layer defaults.
func DefaultTemplates() Templates {
	return Templates{
		Copper:     Template{ThicknessMM: 0.018},
		SolderMask: Template{ThicknessMM: 0.01, Er: 3.5},
		Prepreg:    Template{ThicknessMM: 0.15, Er: 4.1},
		Core:       Template{ThicknessMM: 0.51, Er: 4.5},
	}
}

// classLookup is the fixed copper class assignment for small stacks. Counts
// of 8 and above alternate Signal/Plane starting with Signal.
var classLookup = map[int][]domain.LayerClass{
	2: {domain.ClassSignal, domain.ClassPlane},
	4: {domain.ClassSignal, domain.ClassPlane, domain.ClassPlane, domain.ClassSignal},
	6: {
		domain.ClassSignal, domain.ClassPlane, domain.ClassSignal,
		domain.ClassSignal, domain.ClassPlane, domain.ClassSignal,
	},
}

// Generate builds the stackup for copperCount copper layers:
//
//	Top Solder, C1, D, C2, D, ..., CN, Bottom Solder
//
// Every previous edit is discarded; layers take their values from t.
func Generate(copperCount int, t Templates) (domain.Stackup, error) {
	if !domain.IsSupportedCopperCount(copperCount) {
		return domain.Stackup{}, &domain.InputValidationError{
			Field:  "Copper Layer Count",
			Reason: fmt.Sprintf("%d is not one of %v", copperCount, domain.SupportedCopperCounts),
		}
	}

	layers := make([]domain.Layer, 0, 2*copperCount+1)
	layers = append(layers, solderMask("Top Solder", t.SolderMask))
	for i := 0; i < copperCount; i++ {
		layers = append(layers, copper(i, copperCount, t.Copper))
		if i < copperCount-1 {
			layers = append(layers, dielectric(i, copperCount, t))
		}
	}
	layers = append(layers, solderMask("Bottom Solder", t.SolderMask))

	return domain.Stackup{CopperCount: copperCount, Layers: layers}, nil
}

func copper(i, n int, t Template) domain.Layer {
	pos := i + 1
	l := domain.Layer{
		Class:       copperClass(i, n),
		Kind:        domain.KindCopper,
		ThicknessMM: t.ThicknessMM,
	}
	switch pos {
	case 1:
		l.Name = "1. Top Layer"
		l.Position = domain.PositionTop
	case n:
		l.Name = fmt.Sprintf("%d. Bottom Layer", pos)
		l.Position = domain.PositionBottom
	default:
		l.Name = fmt.Sprintf("%d. Inner Layer %d", pos, pos-1)
		l.Position = domain.PositionInner
	}
	return l
}

func copperClass(i, n int) domain.LayerClass {
	if classes, ok := classLookup[n]; ok {
		return classes[i]
	}
	if (i+1)%2 != 0 {
		return domain.ClassSignal
	}
	return domain.ClassPlane
}

// dielectric returns the layer between copper i and i+1. The middle slot
// (copperCount/2 - 1) is the core; this assumes a single core per stack.
func dielectric(i, n int, t Templates) domain.Layer {
	class, tpl := domain.ClassPrepreg, t.Prepreg
	if i == n/2-1 {
		class, tpl = domain.ClassCore, t.Core
	}
	return domain.Layer{
		Name:        fmt.Sprintf("Dielectric %d", i+2),
		Class:       class,
		Kind:        domain.KindDielectric,
		ThicknessMM: tpl.ThicknessMM,
		Er:          tpl.Er,
	}
}

func solderMask(name string, t Template) domain.Layer {
	return domain.Layer{
		Name:        name,
		Class:       domain.ClassSolderMask,
		Kind:        domain.KindSolderMask,
		ThicknessMM: t.ThicknessMM,
		Er:          t.Er,
	}
}

// AssignPositions tags copper layers Top, Inner or Bottom by their order
// and clears the position of every other layer.
func AssignPositions(layers []domain.Layer) {
	first, last := -1, -1
	for i, l := range layers {
		if l.IsCopper() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	for i := range layers {
		switch {
		case !layers[i].IsCopper():
			layers[i].Position = domain.PositionNone
		case i == first:
			layers[i].Position = domain.PositionTop
		case i == last:
			layers[i].Position = domain.PositionBottom
		default:
			layers[i].Position = domain.PositionInner
		}
	}
}
