// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package resource provides the Go representation of physical labware.
//
// # Core Concepts
//
//   - Resource: The common part of every labware item. It carries a name, the
//     outer dimensions in millimeters, a category and a model identifier.
//
//   - Lid: A cover that rests on a plate. Besides its dimensions it records the
//     nesting height, the vertical overlap between the lid and the plate below.
//
//   - Plate: A plate that can carry exactly one lid. Assigning a lid places it
//     relative to the plate using the lid's nesting height.
//
// Constructors in this package never validate. A descriptor is a plain value
// and checking it is left to whoever owns a collection of them (see the catalog
// package), which calls Validate explicitly.
package resource
