package skills

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultRoot is the conventional directory holding one subdirectory per skill.
const DefaultRoot = "skills"

// ConfigurationError is a fatal discovery error: the root does not exist, is
// not a directory, or a skill document cannot be read. It aborts the entire
// run before any validation happens, unlike per-package findings.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Discovery locates skill packages under a configured root directory
type Discovery struct {
	root string
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoot sets a custom root directory
func WithRoot(root string) Option {
	return func(d *Discovery) error {
		if root == "" {
			return errors.New("root directory must not be empty")
		}
		d.root = root
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance rooted at DefaultRoot
// unless configured otherwise.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{root: DefaultRoot}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Discover lists the immediate subdirectories of the root and returns a
// package for each one containing a SKILL.md file, in lexicographic directory
// name order. Subdirectories without a SKILL.md are silently skipped; they are
// not skills. A missing or unreadable root is a ConfigurationError.
func (d *Discovery) Discover() ([]*SkillPackage, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, &ConfigurationError{Path: d.root, Err: errors.Wrap(err, "skills root not found")}
	}
	if !info.IsDir() {
		return nil, &ConfigurationError{Path: d.root, Err: errors.New("skills root is not a directory")}
	}

	// os.ReadDir returns entries sorted by name, which keeps discovery
	// order deterministic across platforms.
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, &ConfigurationError{Path: d.root, Err: errors.Wrap(err, "reading skills root")}
	}

	var packages []*SkillPackage
	for _, entry := range entries {
		dir := filepath.Join(d.root, entry.Name())

		// Stat rather than entry.IsDir so symlinked skill directories work
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		skillFile := filepath.Join(dir, SkillFileName)
		if _, err := os.Stat(skillFile); err != nil {
			continue
		}

		pkg, err := Load(dir)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// FromDirs constructs packages for explicitly named skill directories,
// preserving the given order. Every directory must exist and contain a
// SKILL.md; problems across all paths are accumulated into one combined
// ConfigurationError-backed failure before any package is validated.
func (d *Discovery) FromDirs(dirs []string) ([]*SkillPackage, error) {
	var merr *multierror.Error
	var packages []*SkillPackage

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			merr = multierror.Append(merr, &ConfigurationError{Path: dir, Err: errors.Wrap(err, "skill directory not found")})
			continue
		}
		if !info.IsDir() {
			merr = multierror.Append(merr, &ConfigurationError{Path: dir, Err: errors.New("not a directory")})
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, SkillFileName)); err != nil {
			merr = multierror.Append(merr, &ConfigurationError{Path: dir, Err: errors.Errorf("no %s found", SkillFileName)})
			continue
		}

		pkg, err := Load(dir)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		packages = append(packages, pkg)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return packages, nil
}

// Load reads a single skill package from its directory. An unreadable
// SKILL.md is a ConfigurationError, not a per-package finding.
func Load(dir string) (*SkillPackage, error) {
	filePath := filepath.Join(dir, SkillFileName)
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ConfigurationError{Path: filePath, Err: errors.Wrap(err, "reading skill file")}
	}

	return &SkillPackage{
		Dir:      dir,
		DirName:  filepath.Base(dir),
		FilePath: filePath,
		Raw:      string(content),
	}, nil
}
