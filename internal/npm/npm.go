// Package npm reads and rewrites the npm package manifest of the generated
// web experiment so example-specific dependencies can be pinned into it.
package npm

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// PackageFile is the npm manifest name inside the testing zone.
const PackageFile = "package.json"

//go:embed package.schema.json
var packageSchema []byte

// Manifest is a loaded npm package manifest. Fields we do not touch are
// preserved verbatim across a rewrite.
type Manifest struct {
	Path string

	data map[string]any
}

// LoadManifest reads and validates the manifest at path. A manifest that does
// not satisfy the schema is rejected before any mutation happens.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "reading package manifest", Cause: err}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &Error{Path: path, Message: "decoding package manifest", Cause: err}
	}

	if err := validate(path, data); err != nil {
		return nil, err
	}
	return &Manifest{Path: path, data: data}, nil
}

// Name returns the manifest's package name.
func (m *Manifest) Name() string {
	name, _ := m.data["name"].(string)
	return name
}

// Dependencies returns a copy of the dependencies table.
func (m *Manifest) Dependencies() map[string]string {
	deps := make(map[string]string)
	table, _ := m.data["dependencies"].(map[string]any)
	for name, version := range table {
		if v, ok := version.(string); ok {
			deps[name] = v
		}
	}
	return deps
}

// SetDependency pins name to the given version range, creating the
// dependencies table if the manifest lacks one.
func (m *Manifest) SetDependency(name, version string) {
	table, ok := m.data["dependencies"].(map[string]any)
	if !ok {
		table = make(map[string]any)
		m.data["dependencies"] = table
	}
	table[name] = version
}

// Save rewrites the manifest in place with two-space indentation.
func (m *Manifest) Save() error {
	out, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return &Error{Path: m.Path, Message: "encoding package manifest", Cause: err}
	}
	if err := os.WriteFile(m.Path, out, 0o644); err != nil {
		return &Error{Path: m.Path, Message: "writing package manifest", Cause: err}
	}
	return nil
}

func validate(path string, data map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(packageSchema),
		gojsonschema.NewGoLoader(data),
	)
	if err != nil {
		return &Error{Path: path, Message: "validating package manifest", Cause: err}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return &ValidationError{Path: path, Problems: problems}
	}
	return nil
}
