// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/labwarego/internal/resource"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ToCtyValue converts a native Go value into its corresponding cty.Value.
func ToCtyValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// EncodeJSON renders a descriptor as a JSON object.
func EncodeJSON(d resource.Descriptor) ([]byte, error) {
	val, err := ToCtyValue(d)
	if err != nil {
		return nil, err
	}
	return ctyjson.Marshal(val, val.Type())
}

// EncodeHCL renders a lid descriptor as a `lid` block that Loader can read
// back. The instance name is not part of a definition and is dropped.
func EncodeHCL(d resource.Descriptor) ([]byte, error) {
	if d.Category != resource.CategoryLid {
		return nil, fmt.Errorf("cannot encode %s '%s' as HCL: only lids have a definition block", d.Category, d.Name)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock("lid", []string{d.Model}).Body()
	if d.Description != "" {
		body.SetAttributeValue("description", cty.StringVal(d.Description))
	}
	body.SetAttributeValue("size_x", cty.NumberFloatVal(d.SizeX))
	body.SetAttributeValue("size_y", cty.NumberFloatVal(d.SizeY))
	body.SetAttributeValue("size_z", cty.NumberFloatVal(d.SizeZ))
	body.SetAttributeValue("nesting_z_height", cty.NumberFloatVal(d.NestingZHeight))

	return f.Bytes(), nil
}
