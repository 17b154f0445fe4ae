package skills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/skillerhq/skiller/pkg/pathutil"
)

// Catalog scans roots for skill candidates and classifies each one.
type Catalog struct {
	manifestName string
	baseDir      string
}

// Option is a function that configures a Catalog
type Option func(*Catalog) error

// WithManifestName overrides the manifest file name looked up in each
// skill folder.
func WithManifestName(name string) Option {
	return func(c *Catalog) error {
		if name == "" {
			return errors.New("manifest name must not be empty")
		}
		c.manifestName = name
		return nil
	}
}

// WithBaseDir sets the base directory display paths are rendered against.
func WithBaseDir(dir string) Option {
	return func(c *Catalog) error {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve base directory %s", dir)
		}
		c.baseDir = abs
		return nil
	}
}

// NewCatalog creates a catalog builder. The base directory defaults to the
// current working directory.
func NewCatalog(opts ...Option) (*Catalog, error) {
	c := &Catalog{manifestName: DefaultManifestName}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get current working directory")
		}
		c.baseDir = cwd
	}

	return c, nil
}

// Scan walks the given roots in order and returns one result per root.
// Within a root, records are sorted lexicographically by folder name.
// Scan never fails as a whole: missing roots and unreadable directories
// degrade to markers on the corresponding RootResult.
func (c *Catalog) Scan(roots []Root) []RootResult {
	results := make([]RootResult, 0, len(roots))
	for _, root := range roots {
		results = append(results, c.scanRoot(root))
	}
	return results
}

func (c *Catalog) scanRoot(root Root) RootResult {
	expanded := pathutil.Expand(root.Path)
	result := RootResult{Root: root, Path: expanded}

	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		result.Missing = true
		return result
	}

	entries, err := os.ReadDir(expanded)
	if err != nil {
		result.Err = errors.Wrapf(err, "failed to list %s", expanded)
		return result
	}

	var names []string
	for _, entry := range entries {
		// stat resolves symlinks, so a symlink to a directory counts
		// as a candidate and a symlink to a file does not
		info, err := os.Stat(filepath.Join(expanded, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		result.Records = append(result.Records, c.classify(expanded, name))
	}
	return result
}

// classify builds the record for one candidate folder. The folder name is
// the record's identity regardless of what the manifest declares.
func (c *Catalog) classify(rootPath, folderName string) Record {
	dir := filepath.Join(rootPath, folderName)
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	record := Record{
		FolderName:  folderName,
		Description: NoDescription,
		Path:        abs,
		DisplayPath: pathutil.Relativize(abs, c.baseDir),
		Status:      StatusNoManifest,
	}

	manifestPath := filepath.Join(dir, c.manifestName)
	info, err := os.Stat(manifestPath)
	if err != nil || info.IsDir() {
		return record
	}

	manifest, ok := ParseManifest(manifestPath)
	if !ok {
		record.Status = StatusInvalidFrontmatter
		return record
	}

	name, hasName := manifest.Field("name")
	description, hasDescription := manifest.Field("description")

	if hasName {
		record.DeclaredName = name
	}
	if description != "" {
		record.Description = strings.ReplaceAll(description, "\n", " ")
	}

	switch {
	case !hasName || !hasDescription:
		record.Status = StatusInvalidFrontmatter
	case name != folderName:
		record.Status = StatusNameMismatch
	default:
		record.Status = StatusValid
	}
	return record
}

// ExpandRoots resolves configured subdirectory patterns under base into
// scan roots. Literal patterns map to exactly one root even when the
// directory is missing, so the scan can report it. Patterns containing
// glob metacharacters are expanded with doublestar; a pattern with no
// matches contributes no roots.
func ExpandRoots(base string, patterns []string) []Root {
	var roots []Root
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			roots = append(roots, Root{Path: filepath.Join(base, pattern), Label: pattern})
			continue
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(base, filepath.FromSlash(pattern)))
		if err != nil {
			roots = append(roots, Root{Path: filepath.Join(base, pattern), Label: pattern})
			continue
		}
		sort.Strings(matches)
		for _, match := range matches {
			label, relErr := filepath.Rel(base, match)
			if relErr != nil {
				label = pattern
			}
			roots = append(roots, Root{Path: match, Label: filepath.ToSlash(label)})
		}
	}
	return roots
}

// Ellipsize truncates s to at most max runes, replacing the tail with an
// ellipsis marker when truncation happens. Truncation is a presentation
// concern: records always carry the full description and callers apply
// their view's configured length. A non-positive max disables truncation.
func Ellipsize(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
