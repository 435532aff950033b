package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diffimp/internal/domain"
	"diffimp/internal/stackup"
	"diffimp/internal/standards"
	"diffimp/internal/util/decimal"
)

const none = "---"

// Stackup renders the layer table with the total board thickness. The
// selected signal layer, if any, is marked with '*'.
func Stackup(styles Styles, s domain.Stackup, selected string) string {
	t := NewTable(
		fmt.Sprintf("Stackup (%d copper layers)", s.CopperCount),
		[]string{"#", "Layer Name", "Class", "Thickness (mm)", "Dk (Er)", "Type"},
	)
	for i, l := range s.Layers {
		name := l.Name
		if selected != "" && name == selected {
			name = "* " + name
		}
		er := "-"
		if l.Kind.HasDielectricConstant() {
			er = decimal.Format(l.Er)
		}
		t.AddStyledRow(layerStyle(styles, l), fmt.Sprintf("%02d", i+1), name, l.Class.String(),
			decimal.Format(l.ThicknessMM), er, l.Kind.String())
	}

	var sb strings.Builder
	sb.WriteString(t.View(styles))
	sb.WriteString(styles.Label.Render("Total PCB Thickness:"))
	fmt.Fprintf(&sb, " %.3f mm\n", stackup.TotalThickness(s))
	return sb.String()
}

func layerStyle(styles Styles, l domain.Layer) lipgloss.Style {
	switch {
	case l.IsCopper():
		return styles.Copper
	case l.Class == domain.ClassSolderMask:
		return styles.SolderMask
	case l.Class == domain.ClassCore:
		return styles.Core
	default:
		return styles.Prepreg
	}
}

// SignalLayers lists the selectable layers, marking the selected one.
func SignalLayers(styles Styles, names []string, selected string) string {
	if len(names) == 0 {
		return styles.Warning.Render("no Signal layers in this stackup") + "\n"
	}
	var sb strings.Builder
	for _, n := range names {
		if n == selected {
			sb.WriteString(styles.Label.Render("* " + n))
		} else {
			sb.WriteString("  " + n)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Result renders a graded calculation.
func Result(styles Styles, r domain.CalculationResult) string {
	status := styles.Success.Render("Impedance PASS")
	zdiff := styles.Success.Render(fmt.Sprintf("%.2f", r.Zdiff))
	if !r.Pass {
		status = styles.Error.Render("Impedance FAIL")
		zdiff = styles.Error.Render(fmt.Sprintf("%.2f", r.Zdiff))
	}

	regime := fmt.Sprintf("Regime 1: WIDE Trace (W/H=%.2f) - 'Best-Fit' Formula", r.WOverH)
	if r.Regime == domain.RegimeNarrow {
		regime = fmt.Sprintf("Regime 2: NARROW Trace (W/H=%.2f) - 'Academic' Formula", r.WOverH)
	}
	cpwg := "(Lateral Ground S ignored, since S >= H)"
	if r.CoplanarApplied {
		cpwg = "(Lateral Ground S EFFECTIVE! CPWG Correction Applied)"
	}

	return block(styles, "Calculation Results: "+r.Layer, [][2]string{
		{"Differential Impedance (Zdiff):", zdiff + " Ohms"},
		{"Result:", fmt.Sprintf("%s (Target range: %.2fΩ - %.2fΩ)", status, r.Lower, r.Upper)},
		{"Used H, T, Er:", fmt.Sprintf(
			"H=%.3f mm (Distance to Nearest Plane), T=%.3f mm, Er=%.2f (Effective (Average) Dk)",
			r.H, r.T, r.Er)},
		{"Model Selection:", fmt.Sprintf("Reference Plane is %s. Model: %s", r.ReferencePlane, regime)},
		{"CPWG Control:", cpwg},
		{"Stackup:", styles.Muted.Render(r.StackupDigest + "  " + r.ID)},
	})
}

// Error renders a failed calculation in place of a result.
func Error(styles Styles, err error) string {
	kind := "Calculation Error"
	var ive *domain.InputValidationError
	var sse *domain.StackupStructureError
	var ism *domain.ImportSizeMismatchError
	switch {
	case errors.As(err, &ive), errors.As(err, &ism):
		kind = "Input Error"
	case errors.As(err, &sse):
		kind = "Stackup Error"
	}

	return block(styles, "Calculation Results", [][2]string{
		{"Differential Impedance (Zdiff):", styles.Error.Render("ERROR")},
		{"Result:", styles.Error.Render(kind) + ": " + err.Error()},
		{"Used H, T, Er:", none},
		{"Model Selection:", none},
		{"CPWG Control:", none},
	})
}

// Standards renders the interface impedance reference table.
func Standards(styles Styles, all []standards.Standard) string {
	t := NewTable("Standard Differential Impedances", []string{
		"Key", "Interface", "Nominal Differential Impedance (Ω)", "Typical Tolerance (± %)", "Notes",
	})
	for _, s := range all {
		t.AddRow(s.Key, s.Interface, s.Nominal, s.Tolerance, s.Notes)
	}
	return t.View(styles)
}

func block(styles Styles, title string, pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	label := styles.Label.Width(width + 1)

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	for _, p := range pairs {
		sb.WriteString(label.Render(p[0]))
		sb.WriteString(p[1])
		sb.WriteString("\n")
	}
	return sb.String()
}
