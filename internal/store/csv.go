package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"diffimp/internal/domain"
)

// ErrNoRows is returned when a CSV file has no header row at all.
var ErrNoRows = errors.New("csv holds no rows")

// Header is the first row of every stackup CSV file.
var Header = []string{"Layer Number", "Layer Name", "Class", "Thickness (mm)", "Dk (Er)", "Type"}

const totalLabel = "Total PCB Thickness"

// EncodeCSV writes rows with a header and a trailing total-thickness row.
func EncodeCSV(rows []domain.StackupRow, totalMM float64) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(Header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Index, r.Name, r.Class, r.Thickness, r.Er, r.Kind}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"", totalLabel + ":", "", fmt.Sprintf("%.3f", totalMM), "mm"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeCSV reads layer rows. The delimiter is ';' unless the header only
// splits on ','. The header, rows with three or fewer fields and the
// total-thickness row are skipped.
func DecodeCSV(b []byte) ([]domain.StackupRow, error) {
	b = bytes.TrimPrefix(b, []byte("\ufeff"))

	records, err := readAll(b, ';')
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	if len(records[0]) == 1 {
		if records, err = readAll(b, ','); err != nil {
			return nil, err
		}
	}

	rows := make([]domain.StackupRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) <= 3 || strings.Contains(rec[1], totalLabel) {
			continue
		}
		r := domain.StackupRow{
			Index:     strings.TrimSpace(rec[0]),
			Name:      rec[1],
			Class:     rec[2],
			Thickness: rec[3],
		}
		if len(rec) > 4 {
			r.Er, r.HasEr = rec[4], true
		}
		if len(rec) > 5 {
			r.Kind, r.HasKind = rec[5], true
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func readAll(b []byte, comma rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var out [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		out = append(out, rec)
	}
}
