// Package skills provides discovery and parsing of skill packages.
// A skill package is a directory containing a single SKILL.md file with
// YAML frontmatter describing the skill plus a free-form markdown body.
package skills

// SkillFileName is the fixed, case-sensitive name of a skill's document.
const SkillFileName = "SKILL.md"

// SkillPackage represents one candidate skill located on disk.
// It is immutable once constructed by discovery.
type SkillPackage struct {
	Dir      string // Path to the skill directory
	DirName  string // Base name of the skill directory
	FilePath string // Path to the SKILL.md file
	Raw      string // Full text content of SKILL.md
}

// Metadata represents the recognized YAML frontmatter fields in SKILL.md files.
// Decoded frontmatter is validated against this shape field by field; external
// catalog tools read name and description from the same block, so the set of
// recognized fields must stay superset-compatible with theirs.
type Metadata struct {
	Name          string       `yaml:"name"`
	Description   string       `yaml:"description"`
	License       string       `yaml:"license"`
	Compatibility string       `yaml:"compatibility"`
	Metadata      *SubMetadata `yaml:"metadata"`
}

// SubMetadata is the nested metadata grouping in frontmatter.
type SubMetadata struct {
	Version string `yaml:"version"`
}
