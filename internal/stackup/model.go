package stackup

import (
	"fmt"
	"slices"
	"strings"

	"diffimp/internal/domain"
	"diffimp/internal/util/decimal"
)

// Editable layer fields accepted by SetField.
const (
	FieldName      = "name"
	FieldClass     = "class"
	FieldThickness = "thickness"
	FieldEr        = "er"
)

// SetField replaces one field of one layer. Numeric values accept '.' or ','
// and an empty numeric value clears the field to zero. Only the edited field is
// checked; cross-layer rules are left to calculation time.
func SetField(s *domain.Stackup, index int, field, value string) error {
	if index < 0 || index >= len(s.Layers) {
		return &domain.InputValidationError{
			Field:  "layer index",
			Reason: fmt.Sprintf("%d is outside 0..%d", index, len(s.Layers)-1),
		}
	}
	l := &s.Layers[index]

	switch canonicalField(field) {
	case FieldName:
		name := strings.TrimSpace(value)
		if name == "" {
			return &domain.InputValidationError{
				Field:  l.Name + " Name",
				Reason: "layer name cannot be empty",
			}
		}
		l.Name = name
	case FieldClass:
		c, ok := domain.ParseLayerClass(value)
		if !ok || !l.Kind.AllowsClass(c) {
			return &domain.InputValidationError{
				Field:  l.Name + " Class",
				Reason: fmt.Sprintf("%q is not a valid class for a %s layer", value, l.Kind),
			}
		}
		l.Class = c
	case FieldThickness:
		v, err := decimal.ParseOptional(value)
		if err != nil {
			return &domain.InputValidationError{Field: l.Name + " Thickness (mm)", Reason: err.Error()}
		}
		l.ThicknessMM = v
	case FieldEr:
		if !l.Kind.HasDielectricConstant() {
			return &domain.InputValidationError{
				Field:  l.Name + " Dk (Er)",
				Reason: "copper layers have no dielectric constant",
			}
		}
		v, err := decimal.ParseOptional(value)
		if err != nil {
			return &domain.InputValidationError{Field: l.Name + " Dk (Er)", Reason: err.Error()}
		}
		l.Er = v
	default:
		return &domain.InputValidationError{
			Field:  "field",
			Reason: fmt.Sprintf("unknown field %q (want name, class, thickness or er)", field),
		}
	}
	return nil
}

func canonicalField(field string) string {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "name":
		return FieldName
	case "class":
		return FieldClass
	case "thickness", "t":
		return FieldThickness
	case "er", "dk":
		return FieldEr
	}
	return ""
}

// TotalThickness is the sum of every layer's thickness in mm.
func TotalThickness(s domain.Stackup) float64 {
	total := 0.0
	for _, l := range s.Layers {
		total += l.ThicknessMM
	}
	return total
}

// TotalThicknessText sums raw thickness entries as an editor holds them
// before they are committed; '.' and ',' decimals both count, and empty or
// non-numeric entries contribute zero.
func TotalThicknessText(entries []string) float64 {
	return decimal.SumLenient(entries)
}

// SignalLayerNames lists, in stack order, the names of Signal layers.
func SignalLayerNames(s domain.Stackup) []string {
	var names []string
	for _, l := range s.Layers {
		if l.Class == domain.ClassSignal {
			names = append(names, l.Name)
		}
	}
	return names
}

// Reselect returns previous when it still names a signal layer, otherwise
// the first signal layer, or "" when there is none.
func Reselect(s domain.Stackup, previous string) string {
	names := SignalLayerNames(s)
	if len(names) == 0 {
		return ""
	}
	if previous != "" && slices.Contains(names, previous) {
		return previous
	}
	return names[0]
}

// IndexOf returns the index of the first layer named name, or -1.
func IndexOf(s domain.Stackup, name string) int {
	if name == "" {
		return -1
	}
	return slices.IndexFunc(s.Layers, func(l domain.Layer) bool { return l.Name == name })
}
