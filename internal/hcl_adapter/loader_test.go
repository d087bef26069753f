package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/labwarego/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_LidBlocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "lids.hcl", `
lid "General_lid" {
  description      = "3D printed"
  size_x           = 139.8
  size_y           = 95.4
  size_z           = 10.05
  nesting_z_height = 6.9
}

lid "Flat_lid" {
  size_x = 127
  size_y = 85
  size_z = 2
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	want := map[string]*config.LidDefinition{
		"General_lid": {
			Model:          "General_lid",
			Description:    "3D printed",
			SizeX:          139.8,
			SizeY:          95.4,
			SizeZ:          10.05,
			NestingZHeight: 6.9,
			FilePath:       path,
		},
		"Flat_lid": {
			Model:    "Flat_lid",
			SizeX:    127,
			SizeY:    85,
			SizeZ:    2,
			FilePath: path,
		},
	}
	if diff := cmp.Diff(want, model.Lids); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `lid "a" {
  size_x = 1
  size_y = 1
  size_z = 1
}`)
	writeFile(t, dir, "b.hcl", `lid "b" {
  size_x = 2
  size_y = 2
  size_z = 2
}`)
	writeFile(t, dir, "ignored.txt", `not hcl at all {`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, model.LidModels())
}

func TestLoad_DuplicateModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	block := `lid "same" {
  size_x = 1
  size_y = 1
  size_z = 1
}`
	writeFile(t, dir, "a.hcl", block)
	writeFile(t, dir, "b.hcl", block)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestLoad_MissingRequiredAttribute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "bad.hcl", `lid "bad" {
  size_x = 1
  size_y = 1
}`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
	assert.Contains(t, err.Error(), "size_z")
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "broken.hcl", `lid "broken" {
  size_x = 1
`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "typo.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")
}

func TestLoad_UnknownBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "typo.hcl", `lidd "x" {
  size_x = 1
  size_y = 1
  size_z = 1
}`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
	assert.Contains(t, err.Error(), "lidd")
}

func TestLoad_StrayAttribute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "stray.hcl", `units = "mm"`)

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units")
}
