package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/agentskills/skillsref/pkg/skills"
)

// DefaultMaxLineLength is the advisory limit on body line length. Lines
// inside fenced code blocks are exempt since they often hold long example
// commands.
const DefaultMaxLineLength = 100

// LintConfig holds the tunable parts of the content linter
type LintConfig struct {
	MaxLineLength int
}

// DefaultLintConfig returns the linter defaults
func DefaultLintConfig() LintConfig {
	return LintConfig{MaxLineLength: DefaultMaxLineLength}
}

// LintBody checks the markdown body of a skill document against structural
// style rules. The body is treated as opaque text: no rule interprets its
// meaning. All findings are warnings; strict mode decides whether they fail
// the run.
func LintBody(pkg *skills.SkillPackage, doc *skills.ParsedDocument, cfg LintConfig) []Finding {
	if cfg.MaxLineLength <= 0 {
		cfg.MaxLineLength = DefaultMaxLineLength
	}

	var findings []Finding

	var fence *fenceState
	for i, line := range strings.Split(doc.Body, "\n") {
		line = strings.TrimRight(line, "\r")
		lineNumber := doc.BodyLine + i

		if fence != nil {
			if fence.closes(line) {
				fence = nil
			}
			continue
		}

		if opened, info := openFence(line); opened != nil {
			fence = opened
			if info == "" {
				findings = append(findings, withLine(warnf(RuleMissingCodeLanguage, pkg.FilePath,
					"fenced code block has no language tag"), lineNumber))
			}
			continue
		}

		if length := utf8.RuneCountInString(line); length > cfg.MaxLineLength {
			findings = append(findings, withLine(warnf(RuleLineTooLong, pkg.FilePath,
				"line is %d characters (limit %d)", length, cfg.MaxLineLength), lineNumber))
		}
	}

	// Heading presence is checked on the parsed AST rather than by scanning
	// for "#" prefixes, so a comment line inside a code fence is not
	// mistaken for a heading.
	if !hasHeading(doc.Body) {
		findings = append(findings, warnf(RuleMissingHeadings, pkg.FilePath,
			"body has no headings"))
	}

	return findings
}

func withLine(f Finding, line int) Finding {
	f.Line = line
	return f
}

// fenceState tracks an open fenced code block
type fenceState struct {
	marker byte
	length int
}

// openFence reports whether the line opens a fenced code block, returning the
// fence state and the info string (language tag) after the fence marker.
func openFence(line string) (*fenceState, string) {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, "```") && !strings.HasPrefix(trimmed, "~~~") {
		return nil, ""
	}

	marker := trimmed[0]
	length := 0
	for length < len(trimmed) && trimmed[length] == marker {
		length++
	}

	info := strings.TrimSpace(trimmed[length:])
	return &fenceState{marker: marker, length: length}, info
}

// closes reports whether the line terminates the open fence: a run of the
// same marker at least as long as the opening run, with nothing else on the
// line.
func (f *fenceState) closes(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < f.length {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != f.marker {
			return false
		}
	}
	return true
}

// hasHeading reports whether the markdown body contains at least one heading
func hasHeading(body string) bool {
	parser := goldmark.New().Parser()
	root := parser.Parse(text.NewReader([]byte(body)))

	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*ast.Heading); ok && entering {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return found
}
