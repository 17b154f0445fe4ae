package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/logger"
	"github.com/skillerhq/skiller/pkg/pathutil"
	"github.com/skillerhq/skiller/pkg/presenter"
	"github.com/skillerhq/skiller/pkg/skills"
)

// runDiscover scans dir for configured agent subdirectories and reports
// every skill candidate found, one status line per folder.
func runDiscover(ctx context.Context, cfg *config.Config, dir string) {
	base := pathutil.Expand(dir)
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		presenter.Error(errors.Errorf("directory '%s' does not exist", base), "Discovery failed")
		return
	}

	catalog, err := skills.NewCatalog(skills.WithBaseDir(base))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill catalog")
		return
	}

	logger.G(ctx).WithField("base_dir", base).Debug("Scanning for agent skill directories")
	results := catalog.Scan(skills.ExpandRoots(base, cfg.CustomSubdirs))

	foundAny := false
	for _, result := range results {
		if result.Missing {
			presenter.Info(fmt.Sprintf("\nNo agent directory found at: %s", result.Path))
			continue
		}

		foundAny = true
		presenter.Info(fmt.Sprintf("\nFound agent directory: %s", result.Path))
		if result.Err != nil {
			presenter.Warning(fmt.Sprintf("  %v", result.Err))
			continue
		}
		if len(result.Records) == 0 {
			presenter.Info("  No skill directories found.")
			continue
		}

		presenter.Info("  Potential skills:")
		for _, record := range result.Records {
			presenter.Info("    - " + discoveryLine(record, cfg.Display.DiscoveryDescriptionLength))
		}
	}

	if !foundAny {
		presenter.Info("\nNo known agent directories found in the specified directory.")
	}
}

// runDiscoverSimple prints one line per skill under the configured
// subdirectories of the current directory: root, folder, description.
func runDiscoverSimple(ctx context.Context, cfg *config.Config) {
	base, err := os.Getwd()
	if err != nil {
		presenter.Error(err, "Failed to get current working directory")
		return
	}

	catalog, err := skills.NewCatalog(skills.WithBaseDir(base))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill catalog")
		return
	}

	results := catalog.Scan(skills.ExpandRoots(base, cfg.CustomSubdirs))

	foundAny := false
	for _, result := range results {
		if result.Missing {
			continue
		}

		foundAny = true
		if result.Err != nil {
			presenter.Warning(result.Err.Error())
			continue
		}

		rootAbs, err := filepath.Abs(result.Path)
		if err != nil {
			rootAbs = result.Path
		}
		displayRoot := pathutil.Relativize(rootAbs, base)
		for _, record := range result.Records {
			description := skills.Ellipsize(record.Description, cfg.Display.DiscoveryDescriptionLength)
			presenter.Info(fmt.Sprintf("%s %s %s", displayRoot, record.FolderName, description))
		}
	}

	if !foundAny {
		presenter.Info("No known agent directories found in the specified directory.")
	}
}

func discoveryLine(record skills.Record, maxLen int) string {
	switch record.Status {
	case skills.StatusValid:
		return fmt.Sprintf("%s: %s", record.FolderName, skills.Ellipsize(record.Description, maxLen))
	case skills.StatusNameMismatch:
		return fmt.Sprintf("%s: (frontmatter name mismatch)", record.FolderName)
	case skills.StatusInvalidFrontmatter:
		return fmt.Sprintf("%s: (invalid or missing frontmatter)", record.FolderName)
	default:
		return fmt.Sprintf("%s: (no %s)", record.FolderName, skills.DefaultManifestName)
	}
}
