// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/xuri/excelize/v2"

	"github.com/gogpu/ggchart"
)

// timeLayouts are tried in order when parsing a time cell.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func readRows(r io.Reader, o *options) ([][]string, error) {
	if o.format == FormatXLSX {
		return xlsxRows(r, o.sheet)
	}
	return csvRows(r)
}

func csvRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	return rows, nil
}

func xlsxRows(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoData
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// rowsToSeries turns a header row plus data rows into one series per value
// column. Empty cells become NaN and are skipped by the renderer.
func rowsToSeries(rows [][]string, o *options) ([]ggchart.Series, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: want a time column and at least one value column, got %d columns",
			ErrBadHeader, len(header))
	}

	series := make([]ggchart.Series, len(header)-1)
	for j := range series {
		name := cell(header, j+1)
		if name == "" {
			name = fmt.Sprintf("series %d", j+1)
		}
		series[j] = ggchart.Series{
			Name:   name,
			Color:  o.color(j),
			Points: make([]ggchart.SeriesPoint, 0, len(rows)-1),
		}
	}

	for i, row := range rows[1:] {
		pos := parsePosition(cell(row, 0), o.location)
		for j := range series {
			raw := cell(row, j+1)
			v := math.NaN()
			if raw != "" {
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("dataset: row %d column %q: %w", i+2, series[j].Name, err)
				}
				v = f
			}
			p := pos
			p.Value = v
			series[j].Points = append(series[j].Points, p)
		}
	}
	return series, nil
}

// parsePosition reads a time cell. Integers are Unix milliseconds; text that
// is not a timestamp becomes an ordinal label.
func parsePosition(s string, loc *time.Location) ggchart.SeriesPoint {
	if s == "" {
		return ggchart.SeriesPoint{}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ggchart.SeriesPoint{Time: time.UnixMilli(ms)}
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ggchart.SeriesPoint{Time: t}
		}
	}
	return ggchart.SeriesPoint{Label: s}
}

// rowsToCategories reads label, value and optional color columns. With
// header set, a first row whose value cell is not numeric is skipped.
func rowsToCategories(rows [][]string, header bool, o *options) ([]ggchart.Category, error) {
	if header && len(rows) > 0 {
		if _, err := strconv.ParseFloat(cell(rows[0], 1), 64); err != nil {
			rows = rows[1:]
		}
	}
	cats := make([]ggchart.Category, 0, len(rows))
	for _, row := range rows {
		label := cell(row, 0)
		if label == "" && cell(row, 1) == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell(row, 1), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: category %q: %w", label, err)
		}
		c, err := parseColor(cell(row, 2))
		if err != nil {
			return nil, fmt.Errorf("dataset: category %q: %w", label, err)
		}
		if c == (gg.RGBA{}) {
			c = o.color(len(cats))
		}
		cats = append(cats, ggchart.Category{Label: label, Value: v, Color: c})
	}
	if len(cats) == 0 {
		return nil, ErrNoData
	}
	return cats, nil
}

var errBadColor = errors.New("invalid hex color")

// parseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". An empty string yields
// the zero color.
func parseColor(s string) (gg.RGBA, error) {
	if s == "" {
		return gg.RGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	return gg.Hex(hex), nil
}
