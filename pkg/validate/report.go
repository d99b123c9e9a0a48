package validate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// PackageResult holds all findings for one skill package
type PackageResult struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Findings []Finding `json:"findings,omitempty"`
}

// Failed reports whether the package fails validation. Errors always fail;
// warnings fail only in strict mode.
func (r PackageResult) Failed(strict bool) bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError || strict {
			return true
		}
	}
	return false
}

// Report aggregates the results for every package examined in one run,
// in the order discovery produced them.
type Report struct {
	Strict  bool
	Results []PackageResult
}

// Add appends a package result to the report
func (r *Report) Add(result PackageResult) {
	r.Results = append(r.Results, result)
}

// OK reports overall success: no error-severity finding exists across all
// packages, and in strict mode no finding at all.
func (r *Report) OK() bool {
	for _, result := range r.Results {
		if result.Failed(r.Strict) {
			return false
		}
	}
	return true
}

// Counts returns the total number of error and warning findings
func (r *Report) Counts() (errorCount, warningCount int) {
	for _, result := range r.Results {
		for _, f := range result.Findings {
			if f.Severity == SeverityError {
				errorCount++
			} else {
				warningCount++
			}
		}
	}
	return errorCount, warningCount
}

// Write renders the human-readable report. Every package examined is listed,
// passing ones included, so a clean run is positively confirmed. When
// showPassing is false, packages without findings are omitted from the
// listing but still counted in the summary.
func (r *Report) Write(w io.Writer, showPassing bool) {
	failed := 0
	for _, result := range r.Results {
		resultFailed := result.Failed(r.Strict)
		if resultFailed {
			failed++
		}

		if len(result.Findings) == 0 && !showPassing {
			continue
		}

		status := "PASS"
		if resultFailed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s\n", status, result.Name)

		for _, f := range result.Findings {
			fmt.Fprintf(w, "  %s %s %s: %s\n", f.Severity, f.Rule, f.Location(), f.Message)
		}
	}

	errorCount, warningCount := r.Counts()
	fmt.Fprintf(w, "\n%d skill(s) checked, %d failed (%d error(s), %d warning(s))\n",
		len(r.Results), failed, errorCount, warningCount)
}

// jsonReport is the machine-readable shape of a report
type jsonReport struct {
	OK     bool            `json:"ok"`
	Strict bool            `json:"strict"`
	Skills []PackageResult `json:"skills"`
}

// JSON returns the machine-readable representation of the report
func (r *Report) JSON() (string, error) {
	skills := r.Results
	if skills == nil {
		skills = []PackageResult{}
	}

	out, err := json.MarshalIndent(jsonReport{
		OK:     r.OK(),
		Strict: r.Strict,
		Skills: skills,
	}, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding report")
	}
	return string(out), nil
}
