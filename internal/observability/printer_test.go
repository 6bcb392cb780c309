package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoresearch/autora-scaffold/internal/manifest"
	"github.com/autoresearch/autora-scaffold/internal/project"
)

func TestStep(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	p.Step(2, 7, "Fetching dependency manifest (branch %s)...", "main")

	assert.Contains(t, out.String(), "Step 2/7:")
	assert.Contains(t, out.String(), "branch main")
}

func TestStep_WithoutTotal(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	p.Step(3, 0, "Updating requirements...")

	assert.Contains(t, out.String(), "Step 3:")
	assert.NotContains(t, out.String(), "Step 3/")
}

func TestWarn(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	p.Warn("npx exited with code %d, continuing", 1)

	assert.Contains(t, out.String(), "warning:")
	assert.Contains(t, out.String(), "code 1")
}

func TestVerbose_OnlyWhenEnabled(t *testing.T) {
	var quiet bytes.Buffer
	NewPrinter(&quiet, false).Verbose("hidden detail")
	assert.Empty(t, quiet.String())

	var chatty bytes.Buffer
	NewPrinter(&chatty, true).Verbose("shown detail")
	assert.Contains(t, chatty.String(), "[VERBOSE]")
	assert.Contains(t, chatty.String(), "shown detail")
}

func TestPrintGroupSummary(t *testing.T) {
	groups := []manifest.Group{
		{Key: "all-theorists", Type: "theorists", Packages: []string{"autora[theorist-bms]", "autora[theorist-darts]"}},
		{Key: "all-documentation", Type: "documentation"},
	}

	t.Run("quiet mode prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		NewPrinter(&out, false).PrintGroupSummary(groups)
		assert.Empty(t, out.String())
	})

	t.Run("verbose mode prints the box", func(t *testing.T) {
		var out bytes.Buffer
		NewPrinter(&out, true).PrintGroupSummary(groups)

		assert.Contains(t, out.String(), "DEPENDENCY GROUPS")
		assert.Contains(t, out.String(), "theorists")
		assert.Contains(t, out.String(), "2 packages")
		assert.Contains(t, out.String(), "(empty, skipped)")
		assert.Contains(t, out.String(), "┌")
	})
}

func TestPrintRunSummary(t *testing.T) {
	record := project.NewRecord("My Lab", "my_lab", project.ModeAdvanced, "main")
	record.Firebase = true
	record.Example = "sweet_bean"
	record.Packages = []string{"a", "b", "c", "d", "e", "f", "g"}

	var out bytes.Buffer
	NewPrinter(&out, false).PrintRunSummary(record)

	s := out.String()
	assert.Contains(t, s, "PROJECT GENERATED")
	assert.Contains(t, s, "My Lab")
	assert.Contains(t, s, "advanced")
	assert.Contains(t, s, "sweet_bean")
	assert.Contains(t, s, "... and 2 more")
}

func TestPrintRunSummary_NilRecord(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false).PrintRunSummary(nil)
	assert.Empty(t, out.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, out.String(), "...")
}
