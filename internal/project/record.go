package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// RecordDir holds generator metadata inside the project.
	RecordDir = ".autora"
	// RecordFile describes how the project was generated.
	RecordFile = "project.json"
)

// Generation modes.
const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

var validate = validator.New()

// Record captures how a project was generated so later tooling can tell what
// it is looking at.
type Record struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Name         string    `json:"name" validate:"required"`
	Slug         string    `json:"slug" validate:"required"`
	CreatedAt    time.Time `json:"created_at" validate:"required"`
	Mode         string    `json:"mode" validate:"required,oneof=basic advanced"`
	SourceBranch string    `json:"source_branch" validate:"required"`
	Firebase     bool      `json:"firebase"`
	Example      string    `json:"example,omitempty"`
	Packages     []string  `json:"packages,omitempty"`
}

// NewRecord starts a record for a freshly generated project.
func NewRecord(name, slug, mode, sourceBranch string) *Record {
	return &Record{
		ID:           uuid.New().String(),
		Name:         name,
		Slug:         slug,
		CreatedAt:    time.Now().UTC(),
		Mode:         mode,
		SourceBranch: sourceBranch,
	}
}

// Validate checks the record against its field constraints.
func (r *Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &RecordError{Message: "invalid project record", Cause: err}
	}
	return nil
}

// RecordPath returns the record location under root.
func RecordPath(root string) string {
	return filepath.Join(root, RecordDir, RecordFile)
}

// Save validates and writes the record into the project.
func (r *Record) Save(root string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	dir := filepath.Join(root, RecordDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &RecordError{Message: "creating record directory", Cause: err}
	}
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &RecordError{Message: "encoding project record", Cause: err}
	}
	if err := os.WriteFile(RecordPath(root), out, 0o644); err != nil {
		return &RecordError{Message: "writing project record", Cause: err}
	}
	return nil
}

// LoadRecord reads and validates the record of an existing project.
func LoadRecord(root string) (*Record, error) {
	raw, err := os.ReadFile(RecordPath(root))
	if err != nil {
		return nil, &RecordError{Message: "reading project record", Cause: err}
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, &RecordError{Message: "decoding project record", Cause: err}
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return &record, nil
}
