// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resource

import (
	"fmt"
	"math"
)

// Category names used by the built-in resource kinds.
const (
	CategoryLid   = "lid"
	CategoryPlate = "plate"
)

// Coordinate is a position in millimeters relative to a parent resource.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

// Resource holds the properties shared by every labware item.
type Resource struct {
	Name     string
	SizeX    float64
	SizeY    float64
	SizeZ    float64
	Category string
	Model    string

	// Description is free text, e.g. where the design comes from.
	Description string

	// Location is nil until the resource is placed on a parent.
	Location *Coordinate
}

// Describer is implemented by every resource that can be turned into a flat
// descriptor for output.
type Describer interface {
	Descriptor() Descriptor
	Validate() error
}

// Descriptor is the flat, serializable view of a resource. NestingZHeight is
// only meaningful for lids and is zero otherwise.
type Descriptor struct {
	Name           string  `cty:"name" json:"name"`
	Category       string  `cty:"category" json:"category"`
	Model          string  `cty:"model" json:"model"`
	Description    string  `cty:"description" json:"description"`
	SizeX          float64 `cty:"size_x" json:"size_x"`
	SizeY          float64 `cty:"size_y" json:"size_y"`
	SizeZ          float64 `cty:"size_z" json:"size_z"`
	NestingZHeight float64 `cty:"nesting_z_height" json:"nesting_z_height"`
}

// Validate checks the name and the outer dimensions.
func (r *Resource) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	dims := []struct {
		field string
		value float64
	}{
		{"size_x", r.SizeX},
		{"size_y", r.SizeY},
		{"size_z", r.SizeZ},
	}
	for _, d := range dims {
		if !isFinite(d.value) || d.value <= 0 {
			return fmt.Errorf("%w: %s of '%s' must be positive, got %g", ErrInvalidDimension, d.field, r.Name, d.value)
		}
	}
	return nil
}

// Descriptor returns the flat view of the resource.
func (r *Resource) Descriptor() Descriptor {
	return Descriptor{
		Name:        r.Name,
		Category:    r.Category,
		Model:       r.Model,
		Description: r.Description,
		SizeX:       r.SizeX,
		SizeY:       r.SizeY,
		SizeZ:       r.SizeZ,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
