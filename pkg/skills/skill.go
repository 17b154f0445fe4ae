// Package skills implements skill discovery and cataloging. Skills are
// packaged as directories containing a SKILL.md file with YAML frontmatter
// declaring the skill's name and description. The catalog builder scans
// configured roots, validates manifests, reconciles declared names against
// folder names, and produces an ordered inventory of installable candidates.
package skills

// NoDescription is the sentinel used when a skill declares no description.
const NoDescription = "(no description)"

// Status classifies a discovered skill candidate.
type Status int

const (
	// StatusValid means the manifest parses, declares name and description,
	// and the declared name matches the folder name.
	StatusValid Status = iota
	// StatusNameMismatch means the manifest is well-formed but its declared
	// name differs from the on-disk folder name.
	StatusNameMismatch
	// StatusInvalidFrontmatter means the manifest file exists but its
	// frontmatter is absent, malformed, or missing required keys.
	StatusInvalidFrontmatter
	// StatusNoManifest means the folder has no manifest file at all.
	StatusNoManifest
)

// String returns a short human-readable form of the status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusNameMismatch:
		return "name mismatch"
	case StatusInvalidFrontmatter:
		return "invalid or missing frontmatter"
	case StatusNoManifest:
		return "no " + DefaultManifestName
	default:
		return "unknown"
	}
}

// Record is one discovered skill candidate. It is an immutable snapshot
// taken during a scan, not a live filesystem handle.
//
// FolderName is always the on-disk directory name and is the record's
// identity; the declared name from the manifest is advisory metadata only.
type Record struct {
	FolderName   string
	DeclaredName string // empty when the manifest declares no name
	Description  string // NoDescription when the manifest declares none
	Path         string // absolute path to the skill directory
	DisplayPath  string // path relative to the scan base, "./"-prefixed
	Status       Status
}

// DisplayName returns the declared name when present, the folder name
// otherwise.
func (r Record) DisplayName() string {
	if r.DeclaredName != "" {
		return r.DeclaredName
	}
	return r.FolderName
}

// Root is one directory to scan for immediate skill-candidate
// subdirectories, with an optional label for reporting.
type Root struct {
	Path  string
	Label string
}

// RootResult is the outcome of scanning a single root. A missing root or a
// per-root read error degrades to a marker instead of failing the scan.
type RootResult struct {
	Root    Root
	Path    string // expanded root path
	Missing bool   // root does not exist or is not a directory
	Err     error  // set when listing the root failed (e.g. permissions)
	Records []Record
}
