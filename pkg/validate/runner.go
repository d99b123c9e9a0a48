package validate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/agentskills/skillsref/pkg/logger"
	"github.com/agentskills/skillsref/pkg/skills"
)

// Runner drives the parse, schema check, and lint chain for skill packages
type Runner struct {
	Strict bool
	Schema SchemaConfig
	Lint   LintConfig
}

// NewRunner creates a runner with default schema and lint settings
func NewRunner() *Runner {
	return &Runner{
		Schema: DefaultSchemaConfig(),
		Lint:   DefaultLintConfig(),
	}
}

// ValidatePackage runs every check against a single package. A finding never
// stops the remaining checks: when the frontmatter is missing or malformed,
// the schema check runs on the partial mapping and the linter runs on
// whatever body could be recovered, so one run surfaces every problem.
func (r *Runner) ValidatePackage(ctx context.Context, pkg *skills.SkillPackage) PackageResult {
	result := PackageResult{
		Name: pkg.DirName,
		Path: pkg.Dir,
	}

	doc, err := skills.ParseDocument(pkg.Raw)
	switch {
	case errors.Is(err, skills.ErrMissingFrontmatter):
		result.Findings = append(result.Findings, errorf(RuleMissingFrontmatter, pkg.FilePath,
			"document does not begin with a frontmatter block"))
	case err != nil:
		result.Findings = append(result.Findings, errorf(RuleMalformedFrontmatter, pkg.FilePath,
			"%v", err))
	}

	meta, schemaFindings := CheckSchema(pkg, doc.Frontmatter, r.Schema)
	result.Findings = append(result.Findings, schemaFindings...)
	result.Findings = append(result.Findings, LintBody(pkg, doc, r.Lint)...)

	logger.G(ctx).WithField("skill", pkg.DirName).
		WithField("name", meta.Name).
		WithField("findings", len(result.Findings)).
		Debug("validated skill package")

	return result
}

// Run validates every package in order and aggregates the results into one
// report. Packages are independent; findings in one never affect another.
func (r *Runner) Run(ctx context.Context, packages []*skills.SkillPackage) *Report {
	report := &Report{Strict: r.Strict}
	for _, pkg := range packages {
		report.Add(r.ValidatePackage(ctx, pkg))
	}
	return report
}
