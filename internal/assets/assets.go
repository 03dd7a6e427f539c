// Package assets embeds the template corpus shipped with the binary.
// The corpus is organized by the naming convention the layer resolver
// depends on: one subtree per frontend framework, backend framework,
// (orm, database) pair, add-on, example, and deployment target.
package assets

import (
	"embed"
	"io/fs"
)

// The all: prefix is required: the corpus contains underscore-prefixed
// dotfile aliases (and .husky/) that plain embed patterns exclude.
//
//go:embed all:templates
var templatesFS embed.FS

// Corpus returns the template corpus rooted at the convention directories
// (base/, frontend/, backend/, ...).
func Corpus() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The templates directory is embedded at compile time; failure
		// here means a broken build, not a runtime condition.
		panic(err)
	}
	return sub
}
