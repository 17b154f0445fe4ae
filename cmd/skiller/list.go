package main

import (
	"context"
	"fmt"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/pathutil"
	"github.com/skillerhq/skiller/pkg/presenter"
	"github.com/skillerhq/skiller/pkg/skills"
)

// runList reports the contents of every configured install location.
func runList(ctx context.Context, cfg *config.Config) {
	paths := cfg.AllPaths()
	if len(paths) == 0 {
		presenter.Info("No configured agent paths to list.")
		return
	}
	listSkillsForPaths(ctx, cfg, paths)
}

// listSkillsForPaths treats each path as a skills root and prints its
// contents under an "agent[kind]" label. Missing and unreadable roots get
// a status line instead of being dropped silently.
func listSkillsForPaths(_ context.Context, cfg *config.Config, paths []string) {
	labels := cfg.PathLabels()

	catalog, err := skills.NewCatalog()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill catalog")
		return
	}

	roots := make([]skills.Root, 0, len(paths))
	for _, p := range paths {
		roots = append(roots, skills.Root{Path: p, Label: pathLabel(labels, p)})
	}
	results := catalog.Scan(roots)

	anyFound := false
	for _, result := range results {
		label := result.Root.Label
		switch {
		case result.Missing:
			presenter.Info(fmt.Sprintf("(missing) %s", label))
		case result.Err != nil:
			presenter.Warning(fmt.Sprintf("Could not read %s: %v", label, result.Err))
		case len(result.Records) == 0:
			presenter.Info(fmt.Sprintf("No skills found under %s.", label))
		default:
			anyFound = true
			presenter.Info(fmt.Sprintf("\nSkills in %s:", label))
			for _, record := range result.Records {
				presenter.Info("  - " + catalogLine(record, cfg.Display.CatalogDescriptionLength))
			}
		}
	}

	if !anyFound {
		presenter.Info("\nNo skills discovered in the provided paths.")
	}
}

func pathLabel(labels map[string]string, path string) string {
	expanded := pathutil.Expand(path)
	if label, ok := labels[expanded]; ok {
		return label
	}
	return expanded
}

func catalogLine(record skills.Record, maxLen int) string {
	switch record.Status {
	case skills.StatusValid:
		description := record.Description
		if description != skills.NoDescription {
			description = skills.Ellipsize(description, maxLen)
		}
		return fmt.Sprintf("%s: %s", record.FolderName, description)
	case skills.StatusNameMismatch:
		return fmt.Sprintf("%s: (frontmatter missing or name mismatch)", record.FolderName)
	case skills.StatusInvalidFrontmatter:
		return fmt.Sprintf("%s: (invalid frontmatter)", record.FolderName)
	default:
		return fmt.Sprintf("%s: (no %s)", record.FolderName, skills.DefaultManifestName)
	}
}
