// Package data provides the embedded level layouts.
package data

import "embed"

// mapsFS embeds all map YAML files from the data directory at build time.
//
//go:embed *.yaml
var mapsFS embed.FS

// FS returns the embedded filesystem containing level layouts.
func FS() embed.FS {
	return mapsFS
}
