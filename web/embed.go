// Package web embeds the static browser frontend so the API binary serves
// the whole application from a single artifact.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// FS returns the static assets rooted at the directory containing index.html.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// Unreachable: the subdirectory is fixed at compile time.
		panic(err)
	}
	return sub
}
