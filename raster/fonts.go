// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches text faces of the embedded Go fonts by size and weight.
// A Fonts may be shared by any number of surfaces; it is not safe for
// concurrent use.
type Fonts struct {
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
}

type faceKey struct {
	size float64
	bold bool
}

// LoadGoFonts parses the Go Regular and Go Bold fonts.
func LoadGoFonts() (*Fonts, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load Go Regular: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("raster: load Go Bold: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
	}, nil
}

// Face returns the face of the given size and weight, creating it on first
// use.
func (f *Fonts) Face(size float64, bold bool) text.Face {
	k := faceKey{size: size, bold: bold}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := src.Face(size)
	f.faces[k] = face
	return face
}

// Close releases both font sources.
func (f *Fonts) Close() error {
	clear(f.faces)
	return errors.Join(f.regular.Close(), f.bold.Close())
}
