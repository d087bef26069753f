// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resource

import "fmt"

// Plate is a labware plate that can carry a single lid.
type Plate struct {
	Resource
	lid *Lid
}

// NewPlate creates a plate descriptor without a lid. It performs no validation.
func NewPlate(name string, sizeX, sizeY, sizeZ float64, model string) *Plate {
	return &Plate{
		Resource: Resource{
			Name:     name,
			SizeX:    sizeX,
			SizeY:    sizeY,
			SizeZ:    sizeZ,
			Category: CategoryPlate,
			Model:    model,
		},
	}
}

// Lid returns the plate's lid, or nil.
func (p *Plate) Lid() *Lid {
	return p.lid
}

// HasLid reports whether a lid is assigned.
func (p *Plate) HasLid() bool {
	return p.lid != nil
}

// AssignLid puts the lid on the plate. The lid is located so that it overlaps
// the plate by its nesting height.
func (p *Plate) AssignLid(lid *Lid) error {
	if lid == nil {
		return fmt.Errorf("cannot assign a nil lid to '%s'", p.Name)
	}
	if p.lid != nil {
		return fmt.Errorf("%w: '%s' carries '%s'", ErrLidAlreadyAssigned, p.Name, p.lid.Name)
	}
	if lid.Location != nil {
		return fmt.Errorf("%w: '%s' must be removed from its plate first", ErrLidPlaced, lid.Name)
	}
	if err := lid.Validate(); err != nil {
		return fmt.Errorf("cannot assign lid to '%s': %w", p.Name, err)
	}
	lid.Location = &Coordinate{X: 0, Y: 0, Z: p.SizeZ - lid.NestingZHeight}
	p.lid = lid
	return nil
}

// UnassignLid removes and returns the plate's lid.
func (p *Plate) UnassignLid() (*Lid, error) {
	if p.lid == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrNoLid, p.Name)
	}
	lid := p.lid
	lid.Location = nil
	p.lid = nil
	return lid, nil
}

// StackedHeight is the total height of the plate including its lid.
func (p *Plate) StackedHeight() float64 {
	if p.lid == nil {
		return p.SizeZ
	}
	return p.SizeZ + p.lid.SizeZ - p.lid.NestingZHeight
}
