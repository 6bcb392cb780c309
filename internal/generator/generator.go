// Package generator drives a generation run: the question sequence, the
// dependency manifest menus, the web experiment scaffold, and the final
// placement of example assets.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/autoresearch/autora-scaffold/internal/manifest"
	"github.com/autoresearch/autora-scaffold/internal/npm"
	"github.com/autoresearch/autora-scaffold/internal/observability"
	"github.com/autoresearch/autora-scaffold/internal/project"
	"github.com/autoresearch/autora-scaffold/internal/prompt"
	"github.com/autoresearch/autora-scaffold/internal/requirements"
	"github.com/autoresearch/autora-scaffold/internal/scaffold"
	"github.com/autoresearch/autora-scaffold/internal/toolchain"
	"github.com/autoresearch/autora-scaffold/internal/venv"
)

// Prompt keys, stable across wording changes so recorded answer sets keep
// working.
const (
	KeyAdvanced    = "advanced"
	KeyFirebase    = "firebase"
	KeyProjectType = "project-type"
	KeyPreRelease  = "pre-release"
)

// FirebaseProlificPackage gates the example-project stage: the web experiment
// is only offered when the matching runner was selected.
const FirebaseProlificPackage = "autora[experiment-runner-firebase-prolific]"

// PackageInstructions is shown once before the package menus.
const PackageInstructions = "In the following questions, mark the packages you want to add to requirements.txt with >SPACE< and press >RETURN< to continue"

// Options configure a generation run on a materialized project.
type Options struct {
	Dir           string // project root, already materialized
	ProjectName   string
	SourceBranch  string
	PythonVersion string // bootstrap only; empty pins the default
	Interactive   bool   // spinners and live tool output
	Verbose       bool
}

// Generator runs the generation flow. All side effects go through the
// injected collaborators so runs are scriptable end to end.
type Generator struct {
	opts     Options
	layout   project.Layout
	prompter prompt.Prompter
	loader   *manifest.Loader
	tools    *toolchain.Tools
	runner   toolchain.Runner
	printer  *observability.Printer
}

// New wires a Generator. The manifest loader may be nil, in which case the
// published AutoRA manifest is used.
func New(opts Options, prompter prompt.Prompter, runner toolchain.Runner, loader *manifest.Loader, printer *observability.Printer) *Generator {
	if loader == nil {
		loader = manifest.NewLoader()
	}
	return &Generator{
		opts:     opts,
		layout:   project.NewLayout(opts.Dir),
		prompter: prompter,
		loader:   loader,
		tools:    toolchain.New(runner),
		runner:   runner,
		printer:  printer,
	}
}

// stepper numbers the progress lines of one path through the flow. A zero
// total leaves the denominator off; the advanced path's step count depends on
// answers not known when its first steps print.
type stepper struct {
	printer *observability.Printer
	n       int
	total   int
}

func (s *stepper) step(format string, args ...any) {
	s.n++
	s.printer.Step(s.n, s.total, format, args...)
}

// Run executes the flow and returns the record of what was generated. The
// record is also saved into the project.
func (g *Generator) Run(ctx context.Context) (*project.Record, error) {
	record := project.NewRecord(g.opts.ProjectName, filepath.Base(g.opts.Dir), project.ModeBasic, g.opts.SourceBranch)

	advanced, err := g.prompter.Confirm(KeyAdvanced, "Do you want to use advanced features?", true)
	if err != nil {
		return nil, err
	}

	if advanced {
		record.Mode = project.ModeAdvanced
		err = g.runAdvanced(ctx, record)
	} else {
		record.Mode = project.ModeBasic
		err = g.runBasic(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	if err := g.cleanup(); err != nil {
		return nil, err
	}

	if err := record.Save(g.opts.Dir); err != nil {
		return nil, err
	}
	g.printer.PrintRunSummary(record)
	return record, nil
}

// runAdvanced fetches the dependency manifest, offers its groups, and, when
// the firebase-prolific runner was picked, sets up the example web
// experiment.
func (g *Generator) runAdvanced(ctx context.Context, record *project.Record) error {
	steps := &stepper{printer: g.printer}

	steps.step("Fetching dependency manifest (branch %s)...", g.opts.SourceBranch)
	doc, err := g.loadManifest(ctx)
	if err != nil {
		return err
	}
	groups, err := doc.Groups()
	if err != nil {
		return err
	}
	g.printer.PrintGroupSummary(groups)

	steps.step("Selecting AutoRA packages...")
	selected, err := g.selectPackages(groups)
	if err != nil {
		return err
	}

	steps.step("Updating %s...", project.ResearcherHubDir+"/"+requirements.FileName)
	reqs := requirements.NewFile(g.layout.ResearcherHub())
	if err := reqs.Append(selected...); err != nil {
		return err
	}
	record.Packages = append(record.Packages, selected...)

	if !contains(selected, FirebaseProlificPackage) {
		g.printer.Verbose("firebase-prolific runner not selected, skipping the example project stage")
		return nil
	}

	firebase, err := g.prompter.Confirm(KeyFirebase, "Do you want to set up a firebase experiment? (ATTENTION: Node is required for this feature)", true)
	if err != nil {
		return err
	}
	if !firebase {
		return nil
	}
	record.Firebase = true

	steps.step("Scaffolding web experiment with create-react-app...")
	if err := g.scaffoldWebApp(ctx); err != nil {
		return err
	}

	example, err := g.selectExample()
	if err != nil {
		return err
	}
	record.Example = example.Token

	steps.step("Applying the %s example...", example.Label)
	if err := g.applyExtras(record, example, reqs); err != nil {
		return err
	}

	steps.step("Placing example assets...")
	stage := scaffold.NewStage(g.layout)
	if err := stage.PlaceExample(example.Token); err != nil {
		return err
	}

	steps.step("Removing staging directories...")
	return stage.RemoveStaging(
		project.StagingWorkflows,
		project.StagingMains,
		project.StagingCSS,
		project.StagingReadmes,
	)
}

// runBasic scaffolds the default firebase experiment without consulting the
// dependency manifest.
func (g *Generator) runBasic(ctx context.Context, record *project.Record) error {
	steps := &stepper{printer: g.printer, total: 5}
	record.Firebase = true
	record.Example = scaffold.BasicExample

	steps.step("Checking for the firebase CLI...")
	if !g.tools.FirebaseCLIInstalled(ctx) {
		g.printer.Info("firebase CLI not found, installing firebase-tools...")
		result, err := g.tools.InstallFirebaseCLI(ctx)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			g.printer.Warn("npm install -g firebase-tools exited with code %d, continuing", result.ExitCode)
		}
	}

	steps.step("Scaffolding web experiment with create-react-app...")
	if err := g.scaffoldWebApp(ctx); err != nil {
		return err
	}

	steps.step("Updating %s...", project.ResearcherHubDir+"/"+requirements.FileName)
	reqs := requirements.NewFile(g.layout.ResearcherHub())
	if err := reqs.Append("autora"); err != nil {
		return err
	}
	record.Packages = append(record.Packages, "autora")

	steps.step("Placing example assets...")
	stage := scaffold.NewStage(g.layout)
	if err := stage.PlaceExample(scaffold.BasicExample); err != nil {
		return err
	}

	steps.step("Removing staging directories...")
	return stage.RemoveStaging(
		project.StagingWorkflows,
		project.StagingMains,
		project.StagingReadmes,
	)
}

// selectPackages runs one multi-select per non-empty group and flattens the
// picks in group order. Duplicate picks across groups are kept.
func (g *Generator) selectPackages(groups []manifest.Group) ([]string, error) {
	g.printer.Info(PackageInstructions)
	var selected []string
	for _, group := range groups {
		if group.Empty() {
			g.printer.Verbose("skipping empty group %s", group.Key)
			continue
		}
		picks, err := g.prompter.MultiSelect(group.Key, fmt.Sprintf("Do you want to install %s", group.Type), prompt.StringOptions(group.Packages))
		if err != nil {
			return nil, err
		}
		selected = append(selected, picks...)
	}
	return selected, nil
}

func (g *Generator) loadManifest(ctx context.Context) (*manifest.Document, error) {
	if !g.opts.Interactive {
		return g.loader.Load(ctx, g.opts.SourceBranch)
	}

	var doc *manifest.Document
	var loadErr error
	if err := prompt.Spin("Fetching dependency manifest...", func() {
		doc, loadErr = g.loader.Load(ctx, g.opts.SourceBranch)
	}); err != nil {
		return nil, err
	}
	return doc, loadErr
}

// scaffoldWebApp runs create-react-app. A non-zero exit is surfaced as a
// warning rather than aborting the run; the asset moves that follow will
// fail loudly if nothing was scaffolded.
func (g *Generator) scaffoldWebApp(ctx context.Context) error {
	if g.opts.Interactive {
		g.tools.Echo = g.printer.Out()
	}
	result, err := g.tools.ScaffoldWebApp(ctx, g.opts.Dir, project.TestingZoneDir, toolchain.WebAppTemplate)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		g.printer.Warn("npx create-react-app exited with code %d, continuing", result.ExitCode)
	}
	return nil
}

func (g *Generator) selectExample() (scaffold.Example, error) {
	options := make([]prompt.Option, 0, len(scaffold.Examples))
	for _, e := range scaffold.Examples {
		options = append(options, prompt.Option{Label: e.Label, Value: e.Token})
	}

	token, err := g.prompter.Select(KeyProjectType, "What type of project do you want to create?", options)
	if err != nil {
		return scaffold.Example{}, err
	}

	example, ok := scaffold.ExampleByToken(token)
	if !ok {
		return scaffold.Example{}, &Error{Message: fmt.Sprintf("unknown project type %q", token)}
	}
	return example, nil
}

// applyExtras applies an example's package additions: its stylesheet, its
// pip packages, and its npm dependency pins.
func (g *Generator) applyExtras(record *project.Record, example scaffold.Example, reqs *requirements.File) error {
	if example.Stylesheet != nil {
		if err := scaffold.NewStage(g.layout).PlaceStylesheet(*example.Stylesheet); err != nil {
			return err
		}
	}

	if len(example.PipPackages) > 0 {
		if err := reqs.Append(example.PipPackages...); err != nil {
			return err
		}
		record.Packages = append(record.Packages, example.PipPackages...)
	}

	if len(example.NpmDependencies) > 0 {
		pkg, err := npm.LoadManifest(g.layout.NpmPackageFile())
		if err != nil {
			return err
		}
		for name, version := range example.NpmDependencies {
			pkg.SetDependency(name, version)
			g.printer.Verbose("pinned %s %s into package.json", name, version)
		}
		if err := pkg.Save(); err != nil {
			return err
		}
	}
	return nil
}

// cleanup removes the throwaway python environment if a bootstrap left one
// behind. It is safe to run on projects that never had one.
func (g *Generator) cleanup() error {
	env := venv.New(g.opts.Dir, "", g.runner)
	if env.Exists() {
		g.printer.Verbose("removing %s", env.Path())
	}
	return env.Remove()
}

// Aborted reports whether err is the user backing out of a prompt.
func Aborted(err error) bool {
	return errors.Is(err, prompt.ErrAborted)
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Error indicates the flow could not continue.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generator error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generator error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
