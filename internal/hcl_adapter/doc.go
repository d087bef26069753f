// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl_adapter provides the HCL implementation of config.Loader and
// the encoders that turn labware descriptors back into HCL and JSON.
//
// A definition file contains one or more `lid` blocks:
//
//	lid "General_lid" {
//	  description      = "3D printed"
//	  size_x           = 139.8
//	  size_y           = 95.4
//	  size_z           = 10.05
//	  nesting_z_height = 6.9
//	}
package hcl_adapter
