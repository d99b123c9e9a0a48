package skills

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ErrMissingFrontmatter indicates the document does not begin with a
// frontmatter delimiter on its very first line.
var ErrMissingFrontmatter = errors.New("document does not begin with a frontmatter block")

// ParsedDocument is the result of splitting a SKILL.md document into its
// frontmatter mapping and markdown body.
type ParsedDocument struct {
	// Frontmatter is the decoded metadata mapping. Nested mappings are
	// preserved one level deep (metadata.version lives under "metadata").
	// It is empty, never nil, when the frontmatter is absent or malformed.
	Frontmatter map[string]any
	// Body is the markdown content after the closing delimiter, or the
	// entire document when no frontmatter block was recognized.
	Body string
	// BodyLine is the 1-based line number of the first body line within
	// the original document, so lint findings can report file positions.
	BodyLine int
}

// ParseDocument splits a raw SKILL.md document into frontmatter and body.
//
// When the first line is not a frontmatter delimiter, it returns the whole
// document as the body along with ErrMissingFrontmatter. When the block is
// unterminated or its YAML content fails to decode (duplicate keys, invalid
// nesting), it returns an empty mapping along with the decode error. In both
// cases the returned document is still usable, so downstream checks can run
// on the partial data in the same pass.
func ParseDocument(raw string) (*ParsedDocument, error) {
	doc := &ParsedDocument{
		Frontmatter: map[string]any{},
		Body:        raw,
		BodyLine:    1,
	}

	lines := strings.Split(raw, "\n")
	if !isDelimiter(lines[0]) {
		return doc, ErrMissingFrontmatter
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			closing = i
			break
		}
	}
	if closing == -1 {
		return doc, errors.New("unterminated frontmatter block")
	}

	doc.Body = strings.Join(lines[closing+1:], "\n")
	doc.BodyLine = closing + 2

	blockLines := make([]string, 0, closing-1)
	for _, line := range lines[1:closing] {
		blockLines = append(blockLines, strings.TrimRight(line, "\r"))
	}
	block := strings.Join(blockLines, "\n")
	fm := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return doc, errors.Wrap(err, "decoding frontmatter")
	}
	if fm != nil {
		doc.Frontmatter = fm
	}

	return doc, nil
}

// isDelimiter reports whether a line is a frontmatter delimiter, tolerating
// trailing whitespace and CRLF line endings.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == frontmatterDelimiter
}
