// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/labwarego/internal/config"
	"github.com/specialistvlad/labwarego/internal/ctxlog"
	"github.com/specialistvlad/labwarego/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their blocks into a
// single model. Defining the same model twice is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Lids {
			if prev, exists := model.Lids[block.Model]; exists {
				return nil, fmt.Errorf("lid '%s' in %s is already defined in %s", block.Model, file, prev.FilePath)
			}
			model.Lids[block.Model] = translateLid(block, file)
		}
		logger.Debug("Loaded definitions from HCL file.", "file", file, "lids", len(root.Lids))
	}

	logger.Debug("HCL loading complete.", "lids", len(model.Lids))
	return model, nil
}

// translateLid converts the HCL-specific lid block into the agnostic model.
func translateLid(b *LidBlock, filePath string) *config.LidDefinition {
	return &config.LidDefinition{
		Model:          b.Model,
		Description:    b.Description,
		SizeX:          b.SizeX,
		SizeY:          b.SizeY,
		SizeZ:          b.SizeZ,
		NestingZHeight: b.NestingZHeight,
		FilePath:       filePath,
	}
}
