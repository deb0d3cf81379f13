// Package web holds the page templates and static assets, compiled into the
// binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates is rooted at templates/, so views are named "fragments/<view>"
// and "layouts/main".
func Templates() fs.FS { return sub("templates") }

// Static is rooted at static/.
func Static() fs.FS { return sub("static") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		panic(err) // dir is a literal embedded above
	}
	return f
}
