// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resource

import "errors"

var (
	// ErrEmptyName is returned by Validate when a resource has no name.
	ErrEmptyName = errors.New("resource name must not be empty")

	// ErrInvalidDimension is returned by Validate when a size or nesting
	// height is out of range.
	ErrInvalidDimension = errors.New("invalid resource dimension")

	// ErrLidAlreadyAssigned is returned when a lid is assigned to a plate
	// that already carries one.
	ErrLidAlreadyAssigned = errors.New("plate already has a lid")

	// ErrLidPlaced is returned when a lid that already sits on a plate is
	// assigned to another one.
	ErrLidPlaced = errors.New("lid is already placed")

	// ErrNoLid is returned when removing a lid from a plate without one.
	ErrNoLid = errors.New("plate has no lid")
)
