// Package embedded compiles the default catalog data into the binary.
package embedded

import (
	"embed"
)

// FS embeds the default catalog yaml file at build time. It is the fallback
// catalog whenever no usable catalog file exists on disk.
//
//go:embed books.yaml
var FS embed.FS

// BooksFile is the name of the default catalog file within FS.
const BooksFile = "books.yaml"
