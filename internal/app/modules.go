package app

import (
	"github.com/specialistvlad/labwarego/internal/catalog"
	"github.com/specialistvlad/labwarego/internal/labware/customprint"
)

// coreModules is the list of built-in labware modules registered when NewApp
// is called without explicit modules.
var coreModules = []catalog.Module{
	customprint.Module{},
}
