// Package installer copies skill directories into configured install roots
// with idempotent, non-destructive semantics: an existing target is never
// overwritten and installing a skill into its own location is a no-op.
package installer

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/skillerhq/skiller/pkg/pathutil"
)

// Outcome classifies the result of installing into one destination root.
type Outcome int

const (
	// OutcomeInstalled means the skill was copied to a fresh target path.
	OutcomeInstalled Outcome = iota
	// OutcomeAlreadyExists means the target path already exists and was
	// left untouched.
	OutcomeAlreadyExists
	// OutcomeSameLocation means the target resolves to the source itself.
	OutcomeSameLocation
	// OutcomeFailed means the copy failed; Result.Err carries the reason.
	OutcomeFailed
)

// String returns a short human-readable form of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeAlreadyExists:
		return "already exists"
	case OutcomeSameLocation:
		return "same location"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one install operation.
type Result struct {
	Outcome Outcome
	Path    string // final destination path
	Err     error  // set when Outcome is OutcomeFailed
}

// Target is one agent install root, tagged with the agent name and path
// kind it came from for reporting.
type Target struct {
	Agent string
	Kind  string
	Root  string
}

// TargetResult pairs a target with its install result.
type TargetResult struct {
	Target Target
	Result Result
}

// Install copies the skill directory at source into destinationRoot,
// creating the root (including parents) when absent. The final path is
// destinationRoot joined with the source's base name. Installing a skill
// over itself returns OutcomeSameLocation; an existing target returns
// OutcomeAlreadyExists without touching it.
func Install(source, destinationRoot string) Result {
	destRoot := pathutil.Expand(destinationRoot)
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return Result{
			Outcome: OutcomeFailed,
			Path:    destRoot,
			Err:     errors.Wrapf(err, "failed to create destination root %s", destRoot),
		}
	}

	destination := filepath.Join(destRoot, filepath.Base(source))

	absSource, err := filepath.Abs(source)
	if err != nil {
		absSource = source
	}
	absDestination, err := filepath.Abs(destination)
	if err != nil {
		absDestination = destination
	}
	if absSource == absDestination {
		return Result{Outcome: OutcomeSameLocation, Path: destination}
	}

	if _, err := os.Stat(destination); err == nil {
		return Result{Outcome: OutcomeAlreadyExists, Path: destination}
	}

	if err := copyDir(source, destination); err != nil {
		return Result{
			Outcome: OutcomeFailed,
			Path:    destination,
			Err:     errors.Wrapf(err, "failed to install into %s", destination),
		}
	}

	return Result{Outcome: OutcomeInstalled, Path: destination}
}

// InstallAll installs the skill into every target independently: one
// target's failure never blocks the remaining targets. The returned error
// aggregates all per-target failures.
func InstallAll(source string, targets []Target) ([]TargetResult, error) {
	results := make([]TargetResult, 0, len(targets))
	var failures *multierror.Error

	for _, target := range targets {
		result := Install(source, target.Root)
		results = append(results, TargetResult{Target: target, Result: result})
		if result.Outcome == OutcomeFailed {
			failures = multierror.Append(failures, result.Err)
		}
	}

	return results, failures.ErrorOrNil()
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
