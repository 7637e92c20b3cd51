// Package assets bundles the demo seed data with the binary.
package assets

import (
	"embed"
	"path"
)

//go:embed seed
var assetsFS embed.FS

// GetSeed returns a file from the seed directory.
func GetSeed(name string) ([]byte, error) {
	return assetsFS.ReadFile(path.Join("seed", name))
}
