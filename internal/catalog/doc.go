// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package catalog is the central registry of labware models.
//
// A Catalog maps model identifiers (e.g., "General_lid") to factory
// functions that build a descriptor for a given instance name. Factories come
// from two places: Go packages that implement the Module interface, and
// definitions loaded from configuration files.
//
// Factories themselves never validate or track names. The catalog does both
// when an instance is created through it: every created descriptor must pass
// its own Validate check, and instance names are unique within one catalog.
package catalog
