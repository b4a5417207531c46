// Package assets embeds the sprite sheet descriptors and the asset manifest
// shipped with the game.
package assets

import "embed"

// FS holds manifest.yaml, rhb.json and tiles.json.
//
//go:embed manifest.yaml *.json
var FS embed.FS
