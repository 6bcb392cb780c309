// Package scaffold materializes the embedded project template and routes its
// staged example assets into place.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var templateFS embed.FS

// templateRoot is the directory inside the embedded tree holding the project
// skeleton.
const templateRoot = "templates/project"

// Vars are the substitution values available to template files as {{.Name}}
// placeholders.
type Vars struct {
	ProjectName  string
	SourceBranch string
}

func (v Vars) data() map[string]string {
	return map[string]string{
		"ProjectName":  v.ProjectName,
		"SourceBranch": v.SourceBranch,
	}
}

// Render replaces template placeholders in the form {{.Key}} with values from
// data.
func Render(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Materialize writes the project skeleton under root: the researcher hub with
// its seeded requirements file, the staging directories of example assets,
// and the top-level docs.
func Materialize(root string, vars Vars) error {
	data := vars.data()

	return fs.WalkDir(templateFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &Error{Path: path, Message: "walking embedded template", Cause: err}
		}
		if path == templateRoot {
			return os.MkdirAll(root, 0o755)
		}

		rel := strings.TrimPrefix(path, templateRoot+"/")
		target := filepath.Join(root, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return &Error{Path: target, Message: "creating template directory", Cause: err}
			}
			return nil
		}

		raw, err := templateFS.ReadFile(path)
		if err != nil {
			return &Error{Path: path, Message: "reading embedded template file", Cause: err}
		}
		if err := os.WriteFile(target, []byte(Render(string(raw), data)), 0o644); err != nil {
			return &Error{Path: target, Message: "writing template file", Cause: err}
		}
		return nil
	})
}
