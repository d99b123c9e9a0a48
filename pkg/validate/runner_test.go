package validate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentskills/skillsref/pkg/skills"
)

func loadSkill(t *testing.T, name, content string) *skills.SkillPackage {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, skills.SkillFileName), []byte(content), 0o644))

	pkg, err := skills.Load(dir)
	require.NoError(t, err)
	return pkg
}

func TestValidatePackageWellFormed(t *testing.T) {
	pkg := loadSkill(t, "create-pr", `---
name: create-pr
description: Create pull requests.
metadata:
  version: "1.1.0"
---

# Create PR

Open a pull request from the current branch.

`+"```bash"+`
gh pr create --fill
`+"```"+`
`)

	runner := NewRunner()
	result := runner.ValidatePackage(context.Background(), pkg)

	assert.Equal(t, "create-pr", result.Name)
	assert.Empty(t, result.Findings)
	assert.False(t, result.Failed(true))
}

func TestValidatePackageMissingFrontmatter(t *testing.T) {
	pkg := loadSkill(t, "bare-skill", "# Bare Skill\n\nNo metadata at all.\n")

	runner := NewRunner()
	result := runner.ValidatePackage(context.Background(), pkg)

	// The parser halts but schema and lint checks still run on the partial
	// data, so every problem surfaces in one pass.
	assert.Len(t, findingsByRule(result.Findings, RuleMissingFrontmatter), 1)
	assert.Len(t, findingsByRule(result.Findings, RuleMissingRequiredField), 2)
	assert.Empty(t, findingsByRule(result.Findings, RuleMissingHeadings),
		"body falls back to the whole document, which has a heading")
}

func TestValidatePackageMalformedFrontmatter(t *testing.T) {
	pkg := loadSkill(t, "dup-skill", `---
name: dup-skill
name: dup-skill
---

# Duplicate Keys
`)

	runner := NewRunner()
	result := runner.ValidatePackage(context.Background(), pkg)

	malformed := findingsByRule(result.Findings, RuleMalformedFrontmatter)
	require.Len(t, malformed, 1)
	assert.Equal(t, SeverityError, malformed[0].Severity)
	// Frontmatter decays to an empty mapping, so required fields are missing too
	assert.Len(t, findingsByRule(result.Findings, RuleMissingRequiredField), 2)
}

func TestValidatePackageLintOnly(t *testing.T) {
	pkg := loadSkill(t, "fence-skill", `---
name: fence-skill
description: Valid metadata, sloppy body.
---

# Fence Skill

`+"```"+`
untagged fence
`+"```"+`
`)

	runner := NewRunner()
	result := runner.ValidatePackage(context.Background(), pkg)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, RuleMissingCodeLanguage, result.Findings[0].Rule)
	assert.Equal(t, SeverityWarning, result.Findings[0].Severity)

	// Advisory by default, failing under strict mode
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestRunAggregates(t *testing.T) {
	good := loadSkill(t, "good-skill", `---
name: good-skill
description: All checks pass.
---

# Good Skill
`)
	bad := loadSkill(t, "bad-skill", `---
name: wrong-name
description: Name does not match the directory.
---

# Bad Skill
`)

	runner := NewRunner()
	report := runner.Run(context.Background(), []*skills.SkillPackage{good, bad})

	require.Len(t, report.Results, 2)
	assert.Equal(t, "good-skill", report.Results[0].Name)
	assert.Equal(t, "bad-skill", report.Results[1].Name)
	assert.Empty(t, report.Results[0].Findings)
	assert.Len(t, findingsByRule(report.Results[1].Findings, RuleNameMismatch), 1)
	assert.False(t, report.OK())
}

func TestRunStrictMode(t *testing.T) {
	warnOnly := loadSkill(t, "warn-skill", `---
name: warn-skill
description: Warning-only body.
---

No headings in this body.
`)

	t.Run("default run passes", func(t *testing.T) {
		runner := NewRunner()
		report := runner.Run(context.Background(), []*skills.SkillPackage{warnOnly})
		assert.True(t, report.OK())
	})

	t.Run("strict run fails", func(t *testing.T) {
		runner := NewRunner()
		runner.Strict = true
		report := runner.Run(context.Background(), []*skills.SkillPackage{warnOnly})
		assert.False(t, report.OK())
	})
}

func TestRunnerCustomLimits(t *testing.T) {
	pkg := loadSkill(t, "tight-skill", `---
name: tight-skill
description: This description is longer than forty characters in total.
---

# Tight Skill

This body line is comfortably under one hundred characters.
`)

	runner := NewRunner()
	runner.Schema.DescriptionLimit = 40
	runner.Lint.MaxLineLength = 30
	result := runner.ValidatePackage(context.Background(), pkg)

	assert.Len(t, findingsByRule(result.Findings, RuleDescriptionTooLong), 1)
	assert.NotEmpty(t, findingsByRule(result.Findings, RuleLineTooLong))
}
