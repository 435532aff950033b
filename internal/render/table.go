package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows under a header, one optional style per row.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	rowStyles []*lipgloss.Style
}

// NewTable creates a Table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row drawn in the body style.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
	t.rowStyles = append(t.rowStyles, nil)
}

// AddStyledRow adds a row drawn in style.
func (t *Table) AddStyledRow(style lipgloss.Style, row ...string) {
	t.Rows = append(t.Rows, row)
	t.rowStyles = append(t.rowStyles, &style)
}

// View renders the table. An empty table renders as "".
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}
	// Width includes the one-cell padding on each side.
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Header.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for r, row := range t.Rows {
		rowStyle := styles.Body
		if s := t.rowStyles[r]; s != nil {
			rowStyle = *s
		}
		rowStyle = rowStyle.Padding(0, 1)
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
			if i < len(row)-1 && i < len(colWidths)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
