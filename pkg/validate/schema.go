package validate

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"github.com/agentskills/skillsref/pkg/skills"
)

// DefaultDescriptionLimit is the soft limit on description length. The "one
// sentence" guidance cannot be enforced mechanically, so anything longer is
// only advisory.
const DefaultDescriptionLimit = 200

// kebab-case: lowercase letters and digits separated by single hyphens
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// knownFields are the recognized top-level frontmatter keys. Anything else is
// reported as unknown-field at warning severity so the schema can evolve
// without breaking older skills.
var knownFields = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"compatibility": true,
	"metadata":      true,
}

// SchemaConfig holds the tunable parts of the frontmatter schema
type SchemaConfig struct {
	DescriptionLimit int
}

// DefaultSchemaConfig returns the schema defaults
func DefaultSchemaConfig() SchemaConfig {
	return SchemaConfig{DescriptionLimit: DefaultDescriptionLimit}
}

// CheckSchema validates a decoded frontmatter mapping against the skill
// metadata schema. All checks run and accumulate; nothing short-circuits, so
// one pass surfaces every problem in the package. It returns the typed
// metadata alongside the findings so callers never have to touch the untyped
// mapping again.
func CheckSchema(pkg *skills.SkillPackage, frontmatter map[string]any, cfg SchemaConfig) (skills.Metadata, []Finding) {
	if cfg.DescriptionLimit <= 0 {
		cfg.DescriptionLimit = DefaultDescriptionLimit
	}

	var meta skills.Metadata
	var findings []Finding

	name, ok := stringField(frontmatter, "name")
	if !ok {
		findings = append(findings, errorf(RuleMissingRequiredField, pkg.FilePath,
			"required field %q is missing or empty", "name"))
	} else {
		meta.Name = name
		if name != pkg.DirName {
			findings = append(findings, errorf(RuleNameMismatch, pkg.FilePath,
				"frontmatter name %q does not match directory name %q", name, pkg.DirName))
		}
		if !namePattern.MatchString(name) {
			findings = append(findings, errorf(RuleInvalidNameFormat, pkg.FilePath,
				"name %q is not kebab-case", name))
		}
	}

	description, ok := stringField(frontmatter, "description")
	if !ok {
		findings = append(findings, errorf(RuleMissingRequiredField, pkg.FilePath,
			"required field %q is missing or empty", "description"))
	} else {
		meta.Description = description
		if length := utf8.RuneCountInString(description); length > cfg.DescriptionLimit {
			findings = append(findings, warnf(RuleDescriptionTooLong, pkg.FilePath,
				"description is %d characters (limit %d)", length, cfg.DescriptionLimit))
		}
	}

	if license, ok := stringField(frontmatter, "license"); ok {
		meta.License = license
	}
	if compatibility, ok := stringField(frontmatter, "compatibility"); ok {
		meta.Compatibility = compatibility
	}

	if sub, ok := frontmatter["metadata"].(map[string]any); ok {
		meta.Metadata = &skills.SubMetadata{}
		if raw, present := sub["version"]; present {
			version, isString := raw.(string)
			if !isString {
				findings = append(findings, errorf(RuleInvalidSemver, pkg.FilePath,
					"metadata.version must be a semantic version string"))
			} else if _, err := semver.StrictNewVersion(version); err != nil {
				findings = append(findings, errorf(RuleInvalidSemver, pkg.FilePath,
					"metadata.version %q is not a valid semantic version: %v", version, err))
			} else {
				meta.Metadata.Version = version
			}
		}
	}

	// Sort unknown keys so repeated runs produce identical reports
	var unknown []string
	for key := range frontmatter {
		if !knownFields[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		findings = append(findings, warnf(RuleUnknownField, pkg.FilePath,
			"unknown frontmatter field %q", key))
	}

	return meta, findings
}

// stringField extracts a non-blank string value for key, reporting whether
// one was present.
func stringField(frontmatter map[string]any, key string) (string, bool) {
	value, ok := frontmatter[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
