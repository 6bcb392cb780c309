// Package project defines the on-disk shape of a generated AutoRA project
// and the record describing how it was generated.
package project

import (
	"path/filepath"
	"strings"
	"unicode"
)

const (
	// ResearcherHubDir holds the python side of the project: the workflow,
	// its requirements, and the researcher-facing README.
	ResearcherHubDir = "researcher_hub"
	// TestingZoneDir holds the scaffolded web experiment.
	TestingZoneDir = "testing_zone"

	// Staging directories materialized by the template and consumed during
	// generation.
	StagingWorkflows = "example_workflows"
	StagingMains     = "example_mains"
	StagingCSS       = "example_css"
	StagingReadmes   = "readmes"
)

// Layout resolves the well-known paths of a generated project.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) ResearcherHub() string {
	return filepath.Join(l.Root, ResearcherHubDir)
}

func (l Layout) TestingZone() string {
	return filepath.Join(l.Root, TestingZoneDir)
}

// RequirementsFile is the pip requirements file package selections append to.
func (l Layout) RequirementsFile() string {
	return filepath.Join(l.ResearcherHub(), "requirements.txt")
}

// WorkflowFile is where the chosen example workflow lands.
func (l Layout) WorkflowFile() string {
	return filepath.Join(l.ResearcherHub(), "autora_workflow.py")
}

// NpmPackageFile is the web experiment's npm manifest.
func (l Layout) NpmPackageFile() string {
	return filepath.Join(l.TestingZone(), "package.json")
}

// DesignFile is where the chosen example design lands inside the web
// experiment.
func (l Layout) DesignFile() string {
	return filepath.Join(l.TestingZone(), "src", "design", "main.js")
}

// CSSDir is created on demand for examples that ship stylesheets.
func (l Layout) CSSDir() string {
	return filepath.Join(l.TestingZone(), "src", "css")
}

func (l Layout) StagingDir(name string) string {
	return filepath.Join(l.Root, name)
}

// Slugify derives the project directory name from a human project name:
// lowercased, whitespace and hyphens folded to underscores, everything else
// non-alphanumeric dropped.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(strings.ToLower(name)) {
		switch {
		case unicode.IsSpace(r), r == '-':
			b.WriteRune('_')
		case r == '_', unicode.IsLower(r), unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
