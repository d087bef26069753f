// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "sort"

// Model is the unified representation of all loaded labware definitions.
type Model struct {
	// Key: model identifier.
	Lids map[string]*LidDefinition
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{
		Lids: make(map[string]*LidDefinition),
	}
}

// LidModels returns the lid model identifiers in sorted order.
func (m *Model) LidModels() []string {
	keys := make([]string, 0, len(m.Lids))
	for k := range m.Lids {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LidDefinition is the format-agnostic representation of a `lid` block.
type LidDefinition struct {
	Model          string
	Description    string
	SizeX          float64
	SizeY          float64
	SizeZ          float64
	NestingZHeight float64

	// FilePath is the file the definition was read from, used in errors.
	FilePath string
}
