// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "math"

// DefaultDomainPadding is the fraction by which a computed domain is
// expanded below its minimum and above its maximum.
const DefaultDomainPadding = 0.1

// flatDomainPad is the absolute half-range substituted when padding cannot
// separate Min from Max.
const flatDomainPad = 1.0

// flatRelativePad widens the fallback for magnitudes where adding
// flatDomainPad is lost to rounding.
const flatRelativePad = 1e-9

// Domain is the value range a chart maps onto its vertical pixel extent.
// A Domain returned by ComputeDomain always has Min < Max.
type Domain struct {
	Min, Max float64
}

// Span returns Max - Min. For bounds near ±math.MaxFloat64 the difference
// is not representable and Span returns +Inf; use Fraction to map values.
func (d Domain) Span() float64 { return d.Max - d.Min }

// Fraction returns the position of v within d, 0 at Min and 1 at Max.
// Operands are halved when the span overflows.
func (d Domain) Fraction(v float64) float64 {
	if span := d.Span(); finite(span) {
		return (v - d.Min) / span
	}
	return (v/2 - d.Min/2) / (d.Max/2 - d.Min/2)
}

// At returns the value at fraction f of d.
func (d Domain) At(f float64) float64 {
	if span := d.Span(); finite(span) {
		return d.Min + span*f
	}
	return 2 * (d.Min/2 + (d.Max/2-d.Min/2)*f)
}

// Contains reports whether v lies within [Min, Max].
func (d Domain) Contains(v float64) bool { return v >= d.Min && v <= d.Max }

// ComputeDomain returns the joint value domain of the given series, expanded
// by padding (a fraction of each bound's magnitude) so plotted lines stay off
// the plot border. Non-finite values are ignored.
//
// The second result is false when no series holds a finite value; callers
// must skip rendering in that case.
func ComputeDomain(padding float64, series ...Series) (Domain, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			if !finite(p.Value) {
				continue
			}
			lo = min(lo, p.Value)
			hi = max(hi, p.Value)
		}
	}
	if lo > hi {
		return Domain{}, false
	}
	if padding < 0 || !finite(padding) {
		padding = 0
	}

	d := Domain{
		Min: clampFinite(lo - math.Abs(lo)*padding),
		Max: clampFinite(hi + math.Abs(hi)*padding),
	}
	if d.Min >= d.Max {
		Logger().Debug("ggchart: degenerate domain, applying fallback range",
			"value", lo)
		pad := max(flatDomainPad, math.Abs(lo)*flatRelativePad)
		d = Domain{Min: clampFinite(lo - pad), Max: clampFinite(hi + pad)}
	}
	return d, true
}

// clampFinite limits v to ±math.MaxFloat64 so padding never yields an
// infinite bound.
func clampFinite(v float64) float64 {
	return max(-math.MaxFloat64, min(v, math.MaxFloat64))
}
