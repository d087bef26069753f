// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package customprint

import (
	"github.com/specialistvlad/labwarego/internal/catalog"
	"github.com/specialistvlad/labwarego/internal/resource"
)

// Module registers the custom printed labware with a catalog.
type Module struct{}

// Register implements catalog.Module.
func (Module) Register(c *catalog.Catalog) {
	c.Register(GeneralLidModel, func(name string) resource.Describer {
		return GeneralLid(name)
	})
}
