// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dataset loads chart input for the ggchart command from CSV, JSON
// and XLSX files.
//
// Tabular files (CSV, XLSX) hold one header row. For series data the first
// column is the time axis and every further column is one series named by
// its header. For category data the columns are label, value and an
// optional hex color.
//
// JSON files hold an array of records. Series are built with
// ggchart.SeriesFromRecords; categories use the keys "name", "value" and
// "color".
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// Errors returned by the loaders.
var (
	ErrUnknownFormat = errors.New("dataset: unknown format")
	ErrNoData        = errors.New("dataset: no data rows")
	ErrBadHeader     = errors.New("dataset: bad header")
)

// Format is an input file format.
type Format uint8

const (
	FormatAuto Format = iota
	FormatCSV
	FormatJSON
	FormatXLSX
)

var formatNames = [...]string{
	FormatAuto: "auto",
	FormatCSV:  "csv",
	FormatJSON: "json",
	FormatXLSX: "xlsx",
}

// String returns the format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat resolves a format name as accepted by String.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf infers the format of path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return FormatAuto, fmt.Errorf("%w: extension of %s", ErrUnknownFormat, path)
	}
}

// DefaultPalette colors series and categories that carry no color.
var DefaultPalette = []gg.RGBA{
	gg.Hex("#0D9488"),
	gg.Hex("#6366F1"),
	gg.Hex("#F59E0B"),
	gg.Hex("#EF4444"),
	gg.Hex("#10B981"),
	gg.Hex("#8B5CF6"),
}

// Option configures a loader.
type Option func(*options)

type options struct {
	format   Format
	sheet    string
	timeKey  string
	palette  []gg.RGBA
	location *time.Location
}

func defaultOptions() options {
	return options{
		timeKey:  "time",
		palette:  DefaultPalette,
		location: time.Local,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFormat overrides format detection.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithSheet selects the XLSX worksheet. The default is the first sheet.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

// WithTimeKey sets the JSON record key holding the time position. An empty
// key produces ordinal points. The default is "time".
func WithTimeKey(key string) Option {
	return func(o *options) { o.timeKey = key }
}

// WithPalette sets the colors assigned in order to uncolored data.
func WithPalette(p []gg.RGBA) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithLocation sets the zone of timestamps that carry none.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

func (o *options) color(i int) gg.RGBA {
	return o.palette[i%len(o.palette)]
}

// open resolves the format and opens path.
func open(path string, o *options) (io.ReadCloser, Format, error) {
	f := o.format
	if f == FormatAuto {
		var err error
		if f, err = FormatOf(path); err != nil {
			return nil, f, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, f, fmt.Errorf("dataset: %w", err)
	}
	return file, f, nil
}
