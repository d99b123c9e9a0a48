package skills

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	raw := `---
name: create-pr
description: Create pull requests.
metadata:
  version: "1.1.0"
---

# Create PR

Open a pull request.
`

	doc, err := ParseDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "create-pr", doc.Frontmatter["name"])
	assert.Equal(t, "Create pull requests.", doc.Frontmatter["description"])

	sub, ok := doc.Frontmatter["metadata"].(map[string]any)
	require.True(t, ok, "nested metadata mapping should be preserved")
	assert.Equal(t, "1.1.0", sub["version"])

	assert.Equal(t, 7, doc.BodyLine)
	assert.Contains(t, doc.Body, "# Create PR")
	assert.NotContains(t, doc.Body, "name: create-pr")
}

func TestParseDocumentMissingFrontmatter(t *testing.T) {
	raw := "# Just content\nNo frontmatter here.\n"

	doc, err := ParseDocument(raw)
	require.True(t, errors.Is(err, ErrMissingFrontmatter))

	assert.Empty(t, doc.Frontmatter)
	assert.Equal(t, raw, doc.Body, "body should be the entire document")
	assert.Equal(t, 1, doc.BodyLine)
}

func TestParseDocumentUnterminated(t *testing.T) {
	raw := "---\nname: test\n# no closing delimiter\n"

	doc, err := ParseDocument(raw)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingFrontmatter))

	assert.Empty(t, doc.Frontmatter)
	assert.Equal(t, raw, doc.Body)
}

func TestParseDocumentMalformed(t *testing.T) {
	raw := `---
name: first
name: second
---

Body survives.
`

	doc, err := ParseDocument(raw)
	require.Error(t, err, "duplicate keys should fail to decode")
	assert.False(t, errors.Is(err, ErrMissingFrontmatter))

	assert.Empty(t, doc.Frontmatter)
	assert.Contains(t, doc.Body, "Body survives.")
	assert.Equal(t, 5, doc.BodyLine)
}

func TestParseDocumentEmptyBlock(t *testing.T) {
	doc, err := ParseDocument("---\n---\nbody\n")
	require.NoError(t, err)
	assert.Empty(t, doc.Frontmatter)
	assert.Equal(t, "body\n", doc.Body)
	assert.Equal(t, 3, doc.BodyLine)
}

func TestParseDocumentCRLF(t *testing.T) {
	doc, err := ParseDocument("---\r\nname: test\r\n---\r\nbody\r\n")
	require.NoError(t, err)
	assert.Equal(t, "test", doc.Frontmatter["name"])
	assert.Contains(t, doc.Body, "body")
}
