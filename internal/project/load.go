package project

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	oerrors "github.com/opmodel/enhance/internal/errors"
)

// File names probed when Load is given a directory, in order.
var defaultModelFiles = []string{"pom.xml", "dependencies.yaml", "dependencies.yml", "dependencies.json", "dependencies.jsonc"}

// Load reads a project model from path.
//
// path may be a pom.xml, a YAML/JSON manifest, or a directory containing one
// of the default model files.
func Load(path string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("project model does not exist", path,
				"Pass a pom.xml, a dependencies.yaml, or a directory containing one.")
		}
		return nil, err
	}

	if info.IsDir() {
		found := ""
		for _, name := range defaultModelFiles {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				found = candidate
				break
			}
		}
		if found == "" {
			return nil, oerrors.NewNotFoundError("no project model in directory", path,
				"Expected one of: "+strings.Join(defaultModelFiles, ", "))
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj *Project
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		proj, err = ParsePOM(bytes.NewReader(data))
	case ".yaml", ".yml":
		proj, err = ParseManifest(data)
	case ".json", ".jsonc":
		// Comments and trailing commas are allowed in JSON manifests.
		proj, err = ParseManifest(jsonc.ToJSON(data))
	default:
		return nil, oerrors.NewValidationError("unsupported project model", path, "",
			"Use a pom.xml or a .yaml/.yml/.json/.jsonc dependency manifest.")
	}
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	proj.Path = path
	return proj, nil
}
