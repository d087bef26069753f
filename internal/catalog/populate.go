// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"context"
	"fmt"

	"github.com/specialistvlad/labwarego/internal/config"
	"github.com/specialistvlad/labwarego/internal/ctxlog"
	"github.com/specialistvlad/labwarego/internal/resource"
)

// PopulateFromModel registers a factory for every lid definition in model.
// Unlike Register it returns an error on conflicts, since the conflict comes
// from user files rather than from code.
func (c *Catalog) PopulateFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, key := range model.LidModels() {
		def := model.Lids[key]
		if c.Has(def.Model) {
			return fmt.Errorf("lid '%s' defined in %s conflicts with an already registered model", def.Model, def.FilePath)
		}

		// Check the definition once up front so that errors point at the file.
		if err := lidFromDefinition(def, def.Model).Validate(); err != nil {
			return fmt.Errorf("invalid lid definition '%s' in %s: %w", def.Model, def.FilePath, err)
		}

		c.Register(def.Model, func(name string) resource.Describer {
			return lidFromDefinition(def, name)
		})
	}

	logger.Debug("Catalog populated from configuration.", "lids", len(model.Lids))
	return nil
}

func lidFromDefinition(def *config.LidDefinition, name string) *resource.Lid {
	lid := resource.NewLid(name, def.SizeX, def.SizeY, def.SizeZ, def.NestingZHeight, def.Model)
	lid.Description = def.Description
	return lid
}
