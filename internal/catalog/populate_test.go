package catalog

import (
	"context"
	"testing"

	"github.com/specialistvlad/labwarego/internal/config"
	"github.com/specialistvlad/labwarego/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateFromModel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	model := config.NewModel()
	model.Lids["printed_lid"] = &config.LidDefinition{
		Model:          "printed_lid",
		SizeX:          120,
		SizeY:          80,
		SizeZ:          9,
		NestingZHeight: 4,
		FilePath:       "lids.hcl",
	}

	c := New(context.Background())
	require.NoError(t, c.PopulateFromModel(ctx, model))
	assert.Equal(t, []string{"printed_lid"}, c.Models())

	item, err := c.Create(ctx, "printed_lid", "lid_a")
	require.NoError(t, err)
	assert.Equal(t, resource.Descriptor{
		Name:           "lid_a",
		Category:       resource.CategoryLid,
		Model:          "printed_lid",
		SizeX:          120,
		SizeY:          80,
		SizeZ:          9,
		NestingZHeight: 4,
	}, item.Descriptor())
}

func TestPopulateFromModel_Conflict(t *testing.T) {
	t.Parallel()

	model := config.NewModel()
	model.Lids["test_lid"] = &config.LidDefinition{Model: "test_lid", SizeX: 1, SizeY: 1, SizeZ: 1, FilePath: "x.hcl"}

	c := New(context.Background())
	c.Register("test_lid", testLidFactory(0))

	err := c.PopulateFromModel(context.Background(), model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.hcl")
}

func TestPopulateFromModel_InvalidDefinition(t *testing.T) {
	t.Parallel()

	model := config.NewModel()
	model.Lids["flat_lid"] = &config.LidDefinition{Model: "flat_lid", SizeX: 1, SizeY: 1, SizeZ: 0, FilePath: "flat.hcl"}

	err := New(context.Background()).PopulateFromModel(context.Background(), model)
	require.ErrorIs(t, err, resource.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "flat.hcl")
}
