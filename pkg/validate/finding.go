// Package validate checks skill packages against the frontmatter schema and
// markdown lint rules, and aggregates the results into a report suitable for
// CI consumption.
package validate

import "fmt"

// Severity classifies a finding. Errors fail the run; warnings are advisory
// unless strict mode escalates them.
type Severity string

const (
	// SeverityError marks a finding that fails validation
	SeverityError Severity = "error"
	// SeverityWarning marks an advisory finding
	SeverityWarning Severity = "warning"
)

// Rule identifiers for every constraint the validator enforces.
const (
	RuleMissingFrontmatter   = "missing-frontmatter"
	RuleMalformedFrontmatter = "malformed-frontmatter"
	RuleMissingRequiredField = "missing-required-field"
	RuleNameMismatch         = "name-mismatch"
	RuleInvalidNameFormat    = "invalid-name-format"
	RuleDescriptionTooLong   = "description-too-long"
	RuleInvalidSemver        = "invalid-semver"
	RuleUnknownField         = "unknown-field"
	RuleLineTooLong          = "line-too-long"
	RuleMissingHeadings      = "missing-headings"
	RuleMissingCodeLanguage  = "missing-code-language"
)

// Finding is one reported validation or lint issue. It is immutable once
// created.
type Finding struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Path     string   `json:"path"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
}

// Location renders the file path with the optional line number
func (f Finding) Location() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.Path, f.Line)
	}
	return f.Path
}

func errorf(rule, path string, format string, args ...any) Finding {
	return Finding{
		Severity: SeverityError,
		Rule:     rule,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	}
}

func warnf(rule, path string, format string, args ...any) Finding {
	return Finding{
		Severity: SeverityWarning,
		Rule:     rule,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	}
}
