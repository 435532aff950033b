package stackup

import (
	"fmt"
	"regexp"
	"strings"

	"diffimp/internal/domain"
	"diffimp/internal/util/decimal"
)

// unitNoise matches the letters and whitespace people paste next to Dk
// values ("4.1 typ", "3,5 @1GHz" minus the digits).
var unitNoise = regexp.MustCompile(`[a-zA-Z\s]+`)

// Rows renders s as CSV rows: two-digit 1-based index, comma decimals, and an
// empty Er column for copper.
func Rows(s domain.Stackup) []domain.StackupRow {
	rows := make([]domain.StackupRow, 0, len(s.Layers))
	for i, l := range s.Layers {
		er := ""
		if l.Kind.HasDielectricConstant() && l.Er != 0 {
			er = decimal.FormatComma(l.Er)
		}
		rows = append(rows, domain.StackupRow{
			Index:     fmt.Sprintf("%02d", i+1),
			Name:      l.Name,
			Class:     l.Class.String(),
			Thickness: decimal.FormatComma(l.ThicknessMM),
			Er:        er,
			Kind:      l.Kind.String(),
			HasEr:     true,
			HasKind:   true,
		})
	}
	return rows
}

// FromRows builds a whole stackup from CSV rows. The kind column is
// required, every layer needs a name, and the rows must follow the physical
// layer order. Copper positions are recomputed from copper order.
func FromRows(rows []domain.StackupRow) (domain.Stackup, error) {
	layers := make([]domain.Layer, 0, len(rows))
	copperCount := 0
	for _, r := range rows {
		kind, ok := domain.ParseLayerKind(r.Kind)
		if !r.HasKind || !ok {
			return domain.Stackup{}, &domain.InputValidationError{
				Field:  rowLabel(r) + " Type",
				Reason: fmt.Sprintf("%q is not a layer type (want Copper, Dielectric or Solder Mask)", r.Kind),
			}
		}
		l := domain.Layer{Name: strings.TrimSpace(r.Name), Kind: kind}
		if err := requireName(l, r); err != nil {
			return domain.Stackup{}, err
		}
		if err := applyRow(&l, r); err != nil {
			return domain.Stackup{}, err
		}
		if l.IsCopper() {
			copperCount++
		}
		layers = append(layers, l)
	}
	if !domain.IsSupportedCopperCount(copperCount) {
		return domain.Stackup{}, &domain.InputValidationError{
			Field:  "Copper Layer Count",
			Reason: fmt.Sprintf("file holds %d copper layers; want one of %v", copperCount, domain.SupportedCopperCounts),
		}
	}
	if err := checkOrder(layers, rows); err != nil {
		return domain.Stackup{}, err
	}
	AssignPositions(layers)
	return domain.Stackup{CopperCount: copperCount, Layers: layers}, nil
}

// checkOrder enforces the physical layout: solder mask, copper, then
// (dielectric, copper) pairs, then solder mask. It names the first row out
// of place.
func checkOrder(layers []domain.Layer, rows []domain.StackupRow) error {
	last := len(layers) - 1
	for i, l := range layers {
		var want domain.LayerKind
		switch {
		case i == 0 || i == last:
			want = domain.KindSolderMask
		case i%2 == 1:
			want = domain.KindCopper
		default:
			want = domain.KindDielectric
		}
		if l.Kind != want {
			return &domain.InputValidationError{
				Field: rowLabel(rows[i]) + " Type",
				Reason: fmt.Sprintf(
					"row %d is %s but the stackup order needs %s here "+
						"(Solder Mask, Copper, Dielectric, Copper, ..., Solder Mask)",
					i+1, l.Kind, want),
			}
		}
	}
	return nil
}

func requireName(l domain.Layer, r domain.StackupRow) error {
	if l.Name != "" {
		return nil
	}
	return &domain.InputValidationError{
		Field:  rowLabel(r) + " Name",
		Reason: "layer name cannot be empty",
	}
}

// ApplyRows imports rows into an existing stackup of the same length. Names,
// classes and thicknesses are copied; Dk text is cleaned of letters and
// whitespace before parsing and only written to non-copper layers. Either
// every row applies or s is left untouched.
func ApplyRows(s *domain.Stackup, rows []domain.StackupRow) error {
	if len(rows) == 0 || len(rows) != len(s.Layers) {
		return &domain.ImportSizeMismatchError{Rows: len(rows), Want: len(s.Layers)}
	}

	next := s.Clone()
	for i, r := range rows {
		l := &next.Layers[i]
		if r.HasKind && strings.TrimSpace(r.Kind) != "" {
			kind, ok := domain.ParseLayerKind(r.Kind)
			if !ok || kind != l.Kind {
				return &domain.InputValidationError{
					Field:  rowLabel(r) + " Type",
					Reason: fmt.Sprintf("%q does not match existing %s layer", r.Kind, l.Kind),
				}
			}
		}
		l.Name = strings.TrimSpace(r.Name)
		if err := requireName(*l, r); err != nil {
			return err
		}
		if err := applyRow(l, r); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// applyRow copies class, thickness and Er from r onto l, whose Kind is set.
func applyRow(l *domain.Layer, r domain.StackupRow) error {
	label := rowLabel(r)

	c, ok := domain.ParseLayerClass(r.Class)
	if !ok || !l.Kind.AllowsClass(c) {
		return &domain.InputValidationError{
			Field:  label + " Class",
			Reason: fmt.Sprintf("%q is not a valid class for a %s layer", r.Class, l.Kind),
		}
	}
	l.Class = c

	t, err := decimal.ParseOptional(r.Thickness)
	if err != nil {
		return &domain.InputValidationError{Field: label + " Thickness (mm)", Reason: err.Error()}
	}
	l.ThicknessMM = t

	if !r.HasEr || !l.Kind.HasDielectricConstant() {
		return nil
	}
	er, err := decimal.ParseOptional(CleanDk(r.Er))
	if err != nil {
		return &domain.InputValidationError{Field: label + " Dk (Er)", Reason: err.Error()}
	}
	l.Er = er
	return nil
}

// CleanDk strips letters and whitespace from a Dk entry and normalizes it
// to a comma decimal. It returns "" when nothing numeric remains.
func CleanDk(raw string) string {
	cleaned := unitNoise.ReplaceAllString(strings.TrimSpace(raw), "")
	return strings.ReplaceAll(cleaned, ".", ",")
}

func rowLabel(r domain.StackupRow) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return "row " + r.Index
}
