// Package dataset summarizes the historical records used to populate the
// dashboard's option ranges. The estimator never reads it.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names expected in the header row.
const (
	ColSquareFeet = "total_sqft"
	ColBedrooms   = "bhk"
	ColBathrooms  = "bath"
)

// Summary holds the distinct values seen in the dataset, in first-seen order.
type Summary struct {
	Rows       int   `json:"rows"`
	SquareFeet []int `json:"square_feet"`
	Bedrooms   []int `json:"bedrooms"`
	Bathrooms  []int `json:"bathrooms"`
	// Square-footage bounds over values at or above the threshold.
	MinSquareFeet int `json:"min_square_feet"`
	MaxSquareFeet int `json:"max_square_feet"`
}

// Load reads an .xlsx or .csv dataset. Square-footage values below threshold
// are dropped before the bounds are computed.
func Load(r io.Reader, ext string, threshold int) (*Summary, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".csv":
		rows, err = csv.NewReader(r).ReadAll()
	default:
		return nil, fmt.Errorf("unsupported dataset format: %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return summarize(rows, threshold)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx rows: %w", err)
	}
	return rows, nil
}

type distinct struct {
	seen   map[int]struct{}
	values []int
}

func (d *distinct) add(v int) {
	if d.seen == nil {
		d.seen = make(map[int]struct{})
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}

func summarize(rows [][]string, threshold int) (*Summary, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: empty")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make(map[string]int, 3)
	for _, name := range []string{ColSquareFeet, ColBedrooms, ColBathrooms} {
		i, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("dataset: missing column %q", name)
		}
		idx[name] = i
	}

	var sqft, bhk, bath distinct
	s := &Summary{}
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		vals := make(map[string]int, 3)
		for name, i := range idx {
			v, err := cell(row, i)
			if err != nil {
				return nil, fmt.Errorf("dataset row %d column %s: %w", n+2, name, err)
			}
			vals[name] = v
		}
		s.Rows++
		sqft.add(vals[ColSquareFeet])
		bhk.add(vals[ColBedrooms])
		bath.add(vals[ColBathrooms])
	}

	for _, v := range sqft.values {
		if v < threshold {
			continue
		}
		s.SquareFeet = append(s.SquareFeet, v)
		if len(s.SquareFeet) == 1 || v < s.MinSquareFeet {
			s.MinSquareFeet = v
		}
		if v > s.MaxSquareFeet {
			s.MaxSquareFeet = v
		}
	}
	s.Bedrooms = bhk.values
	s.Bathrooms = bath.values
	return s, nil
}

// cell parses a numeric cell, truncating toward zero like an integer cast.
func cell(row []string, i int) (int, error) {
	if i >= len(row) {
		return 0, fmt.Errorf("missing value")
	}
	raw := strings.TrimSpace(row[i])
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return int(math.Trunc(f)), nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
