// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/gogpu/ggchart"
)

func decodeRecords(r io.Reader) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("dataset: decode json: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

// jsonSeries builds one series per value key. Value keys are every key of
// the first record except the time key, in sorted order.
func jsonSeries(r io.Reader, o *options) ([]ggchart.Series, error) {
	records, err := decodeRecords(r)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(records[0]))
	for k := range records[0] {
		if k != o.timeKey {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: records hold no value keys", ErrBadHeader)
	}
	slices.Sort(keys)

	timeKey := o.timeKey
	if _, ok := records[0][timeKey]; !ok {
		timeKey = ""
	}
	series := make([]ggchart.Series, 0, len(keys))
	for i, k := range keys {
		s, err := ggchart.SeriesFromRecords(k, o.color(i), records, k, timeKey)
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		series = append(series, s)
	}
	return series, nil
}

func jsonCategories(r io.Reader, o *options) ([]ggchart.Category, error) {
	records, err := decodeRecords(r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{str(rec["name"]), str(rec["value"]), str(rec["color"])})
	}
	return rowsToCategories(rows, false, o)
}

func str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}
