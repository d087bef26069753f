// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package customprint contains labware that is 3D printed in-house rather
// than bought from a vendor.
package customprint

import "github.com/specialistvlad/labwarego/internal/resource"

// GeneralLidModel is the model identifier of GeneralLid.
const GeneralLidModel = "General_lid"

// GeneralLid returns a new descriptor of the general purpose 3D printed lid.
func GeneralLid(name string) *resource.Lid {
	lid := resource.NewLid(
		name,
		139.8,
		95.4,
		10.05,
		6.9, // measured overlap between lid and plate
		GeneralLidModel,
	)
	lid.Description = "3D printed"
	return lid
}
