package generator

import (
	"context"

	"github.com/autoresearch/autora-scaffold/internal/venv"
)

// BasePackage is installed by every bootstrap on top of the selections.
const BasePackage = "autora"

// Bootstrap is the companion flow for projects without a web experiment: a
// pinned virtual environment is created, the same dependency menus run, and
// the selections are pip-installed into the environment instead of being
// appended to a requirements file. A failed install fails the bootstrap;
// installing the packages is its entire point.
func (g *Generator) Bootstrap(ctx context.Context) ([]string, error) {
	steps := &stepper{printer: g.printer, total: 4}
	env := venv.New(g.opts.Dir, g.opts.PythonVersion, g.runner)
	if g.opts.Interactive {
		env.Echo = g.printer.Out()
	}

	steps.step("Creating virtual environment (%s)...", env.Interpreter())
	if err := env.Create(ctx); err != nil {
		return nil, err
	}

	steps.step("Fetching dependency manifest (branch %s)...", g.opts.SourceBranch)
	doc, err := g.loadManifest(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := doc.Groups()
	if err != nil {
		return nil, err
	}
	g.printer.PrintGroupSummary(groups)

	steps.step("Selecting AutoRA packages...")
	selected, err := g.selectPackages(groups)
	if err != nil {
		return nil, err
	}

	pre, err := g.prompter.Confirm(KeyPreRelease, "Do you want to install the newest pre-release versions?", false)
	if err != nil {
		return nil, err
	}

	packages := append([]string{BasePackage}, selected...)
	steps.step("Installing %d packages into %s...", len(packages), env.Path())
	if err := env.InstallPackages(ctx, pre, packages...); err != nil {
		return nil, err
	}

	g.printer.Success("Environment ready. Activate it with: source %s/bin/activate", env.Path())
	return packages, nil
}
