// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/gogpu/ggchart"
)

// LoadSeries reads line chart series from path.
func LoadSeries(path string, opts ...Option) ([]ggchart.Series, error) {
	o := buildOptions(opts)
	r, f, err := open(path, &o)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	o.format = f
	series, err := readSeries(r, &o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// LoadCategories reads donut chart categories from path.
func LoadCategories(path string, opts ...Option) ([]ggchart.Category, error) {
	o := buildOptions(opts)
	r, f, err := open(path, &o)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	o.format = f
	cats, err := readCategories(r, &o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cats, nil
}

// ReadSeries reads line chart series from r. The format must be given with
// WithFormat.
func ReadSeries(r io.Reader, opts ...Option) ([]ggchart.Series, error) {
	o := buildOptions(opts)
	return readSeries(r, &o)
}

// ReadCategories reads donut chart categories from r. The format must be
// given with WithFormat.
func ReadCategories(r io.Reader, opts ...Option) ([]ggchart.Category, error) {
	o := buildOptions(opts)
	return readCategories(r, &o)
}

func readSeries(r io.Reader, o *options) ([]ggchart.Series, error) {
	switch o.format {
	case FormatJSON:
		return jsonSeries(r, o)
	case FormatCSV, FormatXLSX:
		rows, err := readRows(r, o)
		if err != nil {
			return nil, err
		}
		return rowsToSeries(rows, o)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, o.format)
	}
}

func readCategories(r io.Reader, o *options) ([]ggchart.Category, error) {
	switch o.format {
	case FormatJSON:
		return jsonCategories(r, o)
	case FormatCSV, FormatXLSX:
		rows, err := readRows(r, o)
		if err != nil {
			return nil, err
		}
		return rowsToCategories(rows, true, o)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, o.format)
	}
}
