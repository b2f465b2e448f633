// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// DefaultSeriesColor is the line color used when a Series has none.
var DefaultSeriesColor = gg.Hex("#0D9488")

// SeriesPoint is one sample of a Series. A zero Time marks an ordinal point,
// in which case Label (or the 1-based index) names the position on the
// time axis.
type SeriesPoint struct {
	Time  time.Time
	Label string
	Value float64
}

// Series is a named, colored sequence of points in chronological order.
// Series drawn on one chart share a Domain and are expected to have the
// same number of points.
type Series struct {
	Name   string
	Color  gg.RGBA
	Points []SeriesPoint
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Points) }

// color returns the series color, falling back to DefaultSeriesColor when
// the color was left unset.
func (s Series) color() gg.RGBA {
	if s.Color == (gg.RGBA{}) {
		return DefaultSeriesColor
	}
	return s.Color
}

// Category is one named magnitude of a donut chart. Value must be
// non-negative; zero is legal and yields a zero-width segment.
type Category struct {
	Label string
	Value float64
	Color gg.RGBA
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Errors returned by SeriesFromRecords.
var (
	// ErrMissingKey is returned when a record lacks the value or time key.
	ErrMissingKey = errors.New("ggchart: record is missing key")

	// ErrInvalidValue is returned when a record field cannot be converted.
	ErrInvalidValue = errors.New("ggchart: invalid record value")
)

// SeriesFromRecords builds a Series from loosely typed records, picking the
// value from valueKey and the position from timeKey. An empty timeKey
// produces ordinal points.
//
// Time fields may hold a time.Time, an RFC 3339 string, or Unix
// milliseconds. Value fields may hold any Go numeric type or a numeric
// string. Strings that are not timestamps become ordinal labels.
func SeriesFromRecords(name string, color gg.RGBA, records []map[string]any, valueKey, timeKey string) (Series, error) {
	s := Series{Name: name, Color: color, Points: make([]SeriesPoint, 0, len(records))}
	for i, rec := range records {
		raw, ok := rec[valueKey]
		if !ok {
			return Series{}, fmt.Errorf("%w %q at record %d", ErrMissingKey, valueKey, i)
		}
		v, err := toFloat(raw)
		if err != nil {
			return Series{}, fmt.Errorf("record %d field %q: %w", i, valueKey, err)
		}
		p := SeriesPoint{Value: v}
		if timeKey != "" {
			rawTime, ok := rec[timeKey]
			if !ok {
				return Series{}, fmt.Errorf("%w %q at record %d", ErrMissingKey, timeKey, i)
			}
			if err := setPosition(&p, rawTime); err != nil {
				return Series{}, fmt.Errorf("record %d field %q: %w", i, timeKey, err)
			}
		}
		s.Points = append(s.Points, p)
	}
	return s, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, n)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

func setPosition(p *SeriesPoint, v any) error {
	switch t := v.(type) {
	case time.Time:
		p.Time = t
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			p.Time = ts
		} else {
			p.Label = t
		}
	case int64:
		p.Time = time.UnixMilli(t)
	case int:
		p.Time = time.UnixMilli(int64(t))
	case float64:
		if !finite(t) {
			return fmt.Errorf("%w: non-finite timestamp", ErrInvalidValue)
		}
		p.Time = time.UnixMilli(int64(t))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
	return nil
}
