// Package docs embeds the long-form help topics shipped with the styledot
// binary. The CLI exposes them through "styledot help <topic>".
package docs

import (
	"embed"
	"io/fs"
)

//go:embed help
var helpFiles embed.FS

// Help returns the embedded help topics rooted at the topic files.
func Help() fs.FS {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		panic(err)
	}
	return sub
}
