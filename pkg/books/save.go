package books

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
)

// Save writes the catalog to the configured path, overwriting prior
// content. Write failures surface as IOError; they are never swallowed,
// since the caller must know a mutation was not durably recorded.
func (cat *catalog) Save() error {
	if cat.options.writePath == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no write path configured for saving",
		}
	}
	return cat.saveTo(cat.options.writePath)
}

// saveTo writes the catalog to the given path, creating parent
// directories as needed.
func (cat *catalog) saveTo(path string) error {
	data, err := yaml.MarshalWithOptions(cat.list,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
