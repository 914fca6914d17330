// Package gamedata provides the board tables and tile palette, embedded as
// JSON at build time and optionally overridden from a directory on disk.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

const (
	boardsFile  = "boards.json"
	paletteFile = "tiles.json"
)
