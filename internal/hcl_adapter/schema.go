// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl_adapter

// fileRoot decodes a definition file. Any block or attribute other than
// `lid` is reported as a diagnostic.
type fileRoot struct {
	Lids []*LidBlock `hcl:"lid,block"`
}

// LidBlock represents a `lid` block.
type LidBlock struct {
	Model          string  `hcl:"model,label"`
	Description    string  `hcl:"description,optional"`
	SizeX          float64 `hcl:"size_x"`
	SizeY          float64 `hcl:"size_y"`
	SizeZ          float64 `hcl:"size_z"`
	NestingZHeight float64 `hcl:"nesting_z_height,optional"`
}
