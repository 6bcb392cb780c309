// Package manifest loads and interprets the remote AutoRA dependency manifest.
// The manifest is the pyproject document published on the AutoRA repository; its
// optional-dependency groups drive the package selection menus.
package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/autoresearch/autora-scaffold/internal/fetch"
)

// DefaultURLTemplate is the raw-content location of the manifest, parameterized
// by source branch.
const DefaultURLTemplate = "https://raw.githubusercontent.com/AutoResearch/autora/%s/pyproject.toml"

// AggregateGroup is the optional-dependency group that enumerates all other
// selectable groups, one bracketed reference per entry.
const AggregateGroup = "all"

// groupPrefix is the naming convention for aggregate group references. The
// human-readable type of a group is its key with this prefix stripped; if the
// remote document stops following the convention, prompts are titled with the
// raw key and nothing flags it.
const groupPrefix = "all-"

// Document is the parsed remote dependency manifest.
type Document struct {
	Project ProjectTable `toml:"project"`
}

// ProjectTable mirrors the subset of the manifest's project table we consume.
type ProjectTable struct {
	Name                 string              `toml:"name"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}

// Group is one selectable optional-dependency group.
type Group struct {
	Key      string   // raw group key, e.g. "all-theorists"
	Type     string   // key with the convention prefix stripped, e.g. "theorists"
	Packages []string // raw package specifiers offered as choices
}

// Empty reports whether the group offers no packages. Empty groups produce no
// prompt.
func (g Group) Empty() bool {
	return len(g.Packages) == 0
}

// Loader fetches and parses manifest documents.
type Loader struct {
	// URLTemplate must contain one %s verb for the source branch.
	URLTemplate string
	FetchOpts   *fetch.Options
}

// NewLoader returns a Loader pointed at the published AutoRA manifest.
func NewLoader() *Loader {
	return &Loader{URLTemplate: DefaultURLTemplate}
}

// URL returns the manifest location for the given source branch.
func (l *Loader) URL(sourceBranch string) string {
	return fmt.Sprintf(l.URLTemplate, sourceBranch)
}

// Load fetches the manifest for the given source branch and parses it.
// Network and shape failures are fatal to the caller; there is no retry and no
// cached fallback — the document is fetched fresh on every run.
func (l *Loader) Load(ctx context.Context, sourceBranch string) (*Document, error) {
	result, err := fetch.URL(ctx, l.URL(sourceBranch), l.FetchOpts)
	if err != nil {
		return nil, fmt.Errorf("loading dependency manifest: %w", err)
	}
	return Parse(result.Body)
}

// Parse decodes a manifest document from TOML text.
func Parse(text string) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Message: "malformed manifest document", Cause: err}
	}
	return &doc, nil
}

// Groups derives the selectable dependency groups from the aggregate group.
// Each aggregate entry is shaped "autora[<group-key>]"; the bracketed key names
// another optional-dependency group in the same document, whose package list
// becomes that group's choices. Order follows the aggregate entry order.
func (d *Document) Groups() ([]Group, error) {
	refs, ok := d.Project.OptionalDependencies[AggregateGroup]
	if !ok {
		return nil, &ParseError{Message: fmt.Sprintf("manifest has no %q optional-dependency group", AggregateGroup)}
	}

	groups := make([]Group, 0, len(refs))
	for _, ref := range refs {
		key, err := bracketContent(ref)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{
			Key:      key,
			Type:     strings.TrimPrefix(key, groupPrefix),
			Packages: d.Project.OptionalDependencies[key],
		})
	}
	return groups, nil
}

// bracketContent extracts the group key from an aggregate entry such as
// "autora[all-theorists]". A missing opening bracket is a shape error; a
// missing closing bracket yields the remainder of the entry.
func bracketContent(ref string) (string, error) {
	_, rest, found := strings.Cut(ref, "[")
	if !found {
		return "", &ParseError{Message: fmt.Sprintf("aggregate entry %q has no bracketed group key", ref)}
	}
	key, _, _ := strings.Cut(rest, "]")
	return key, nil
}
