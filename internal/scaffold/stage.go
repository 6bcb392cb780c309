package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/autoresearch/autora-scaffold/internal/project"
)

// Move relocates a staged asset. A missing source is an error: the template
// must have staged it, so absence means the project tree is broken. Renames
// fall back to copy-and-delete when the tree spans filesystems.
func Move(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return &Error{Path: src, Message: "staged asset missing", Cause: err}
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return &Error{Path: src, Message: "reading staged asset", Cause: err}
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return &Error{Path: dst, Message: "placing staged asset", Cause: err}
	}
	if err := os.Remove(src); err != nil {
		return &Error{Path: src, Message: "removing moved asset", Cause: err}
	}
	return nil
}

// Stage routes staged example assets into their final locations inside a
// materialized project.
type Stage struct {
	layout project.Layout
}

func NewStage(layout project.Layout) *Stage {
	return &Stage{layout: layout}
}

// PlaceExample moves the chosen design into the web experiment and the
// matching workflow and docs into the researcher hub.
func (s *Stage) PlaceExample(token string) error {
	moves := []struct {
		src string
		dst string
	}{
		{
			src: filepath.Join(s.layout.StagingDir(project.StagingMains), token+".js"),
			dst: s.layout.DesignFile(),
		},
		{
			src: filepath.Join(s.layout.StagingDir(project.StagingWorkflows), token+".py"),
			dst: s.layout.WorkflowFile(),
		},
		{
			src: filepath.Join(s.layout.StagingDir(project.StagingReadmes), "README_AUTORA.md"),
			dst: filepath.Join(s.layout.ResearcherHub(), "README.md"),
		},
		{
			src: filepath.Join(s.layout.StagingDir(project.StagingReadmes), fmt.Sprintf("README_FIREBASE_%s.md", token)),
			dst: filepath.Join(s.layout.TestingZone(), "README.md"),
		},
	}

	for _, m := range moves {
		if err := Move(m.src, m.dst); err != nil {
			return err
		}
	}
	return nil
}

// PlaceStylesheet creates the web experiment's css directory and moves the
// staged sheet into it under its final name.
func (s *Stage) PlaceStylesheet(sheet Stylesheet) error {
	if err := os.MkdirAll(s.layout.CSSDir(), 0o755); err != nil {
		return &Error{Path: s.layout.CSSDir(), Message: "creating css directory", Cause: err}
	}
	return Move(
		filepath.Join(s.layout.StagingDir(project.StagingCSS), sheet.Source),
		filepath.Join(s.layout.CSSDir(), sheet.Target),
	)
}

// RemoveStaging deletes consumed staging directories. Removing an absent
// directory is a no-op.
func (s *Stage) RemoveStaging(names ...string) error {
	for _, name := range names {
		dir := s.layout.StagingDir(name)
		if err := os.RemoveAll(dir); err != nil {
			return &Error{Path: dir, Message: "removing staging directory", Cause: err}
		}
	}
	return nil
}
