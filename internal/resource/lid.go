// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Lid, a cover that nests on top of a plate.
//
// The nesting height is the distance by which the lid drops over the plate
// rim. A plate of height H carrying a lid of height h with nesting height n
// is H + h - n tall.
package resource

import "fmt"

// Lid is a labware lid.
type Lid struct {
	Resource
	NestingZHeight float64
}

// NewLid creates a lid descriptor. It performs no validation.
func NewLid(name string, sizeX, sizeY, sizeZ, nestingZHeight float64, model string) *Lid {
	return &Lid{
		Resource: Resource{
			Name:     name,
			SizeX:    sizeX,
			SizeY:    sizeY,
			SizeZ:    sizeZ,
			Category: CategoryLid,
			Model:    model,
		},
		NestingZHeight: nestingZHeight,
	}
}

// Validate checks the lid's dimensions, including that the nesting height
// lies within the lid's own height.
func (l *Lid) Validate() error {
	if err := l.Resource.Validate(); err != nil {
		return err
	}
	if !isFinite(l.NestingZHeight) || l.NestingZHeight < 0 {
		return fmt.Errorf("%w: nesting_z_height of '%s' must be finite and not negative, got %g", ErrInvalidDimension, l.Name, l.NestingZHeight)
	}
	if l.NestingZHeight > l.SizeZ {
		return fmt.Errorf("%w: nesting_z_height of '%s' (%g) exceeds size_z (%g)", ErrInvalidDimension, l.Name, l.NestingZHeight, l.SizeZ)
	}
	return nil
}

// Descriptor returns the flat view of the lid.
func (l *Lid) Descriptor() Descriptor {
	d := l.Resource.Descriptor()
	d.NestingZHeight = l.NestingZHeight
	return d
}
