package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/installer"
	"github.com/skillerhq/skiller/pkg/logger"
	"github.com/skillerhq/skiller/pkg/presenter"
	"github.com/skillerhq/skiller/pkg/prompt"
	"github.com/skillerhq/skiller/pkg/skills"
)

// runInstall drives the interactive install flow: pick a discovered skill,
// pick agents and path kinds, then install into every target combination
// independently.
func runInstall(ctx context.Context, cfg *config.Config, p prompt.Prompter) {
	base, err := os.Getwd()
	if err != nil {
		presenter.Error(err, "Failed to get current working directory")
		return
	}

	candidates := gatherCandidates(ctx, cfg, base)
	if len(candidates) == 0 {
		presenter.Info("No discoverable skills found under the configured subdirectories.")
		return
	}

	choices := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		description := skills.Ellipsize(candidate.Description, cfg.Display.CatalogDescriptionLength)
		choices = append(choices, fmt.Sprintf("%s [%s] - %s", candidate.DisplayName(), candidate.DisplayPath, description))
	}

	selected, ok := p.SelectOne("Choose a skill to install:", choices, "")
	if !ok {
		return
	}
	var candidate skills.Record
	for i, choice := range choices {
		if choice == selected {
			candidate = candidates[i]
			break
		}
	}

	agents := cfg.AgentNames()
	if len(agents) == 0 {
		presenter.Info("No agent configurations available to install into.")
		return
	}

	selectedAgents, ok := p.SelectMany("Choose agent(s) to install for:", agents, agents[:1])
	if !ok || len(selectedAgents) == 0 {
		return
	}

	kinds, ok := p.SelectMany("Choose path types to install into (user/project):", config.Kinds(), []string{config.KindUser})
	if !ok || len(kinds) == 0 {
		return
	}

	var targets []installer.Target
	for _, agent := range selectedAgents {
		dirs := cfg.AgentDirs[agent]
		for _, kind := range kinds {
			roots := dirs.ByKind(kind)
			if len(roots) == 0 {
				presenter.Info(fmt.Sprintf("No configured %s paths for agent '%s'.", kind, agent))
				continue
			}
			for _, root := range roots {
				targets = append(targets, installer.Target{Agent: agent, Kind: kind, Root: root})
			}
		}
	}
	if len(targets) == 0 {
		presenter.Info("No install targets were available for the selected agents.")
		return
	}

	results, err := installer.InstallAll(candidate.Path, targets)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("Some install targets failed")
	}

	installedAny := false
	for _, tr := range results {
		reportInstall(candidate.DisplayName(), tr)
		if tr.Result.Outcome == installer.OutcomeInstalled {
			installedAny = true
		}
	}
	if !installedAny {
		presenter.Info("No installations were performed (targets already existed or failed).")
	}
}

// gatherCandidates scans the configured subdirectories under base and
// flattens every discovered record, whatever its status: install targets
// are chosen by folder, not by manifest validity.
func gatherCandidates(_ context.Context, cfg *config.Config, base string) []skills.Record {
	catalog, err := skills.NewCatalog(skills.WithBaseDir(base))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill catalog")
		return nil
	}

	var candidates []skills.Record
	for _, result := range catalog.Scan(skills.ExpandRoots(base, cfg.CustomSubdirs)) {
		if result.Missing {
			continue
		}
		if result.Err != nil {
			presenter.Warning(result.Err.Error())
			continue
		}
		candidates = append(candidates, result.Records...)
	}
	return candidates
}

func reportInstall(name string, tr installer.TargetResult) {
	target := fmt.Sprintf("%s for agent '%s' (%s) -> %s", name, tr.Target.Agent, tr.Target.Kind, tr.Result.Path)
	switch tr.Result.Outcome {
	case installer.OutcomeInstalled:
		presenter.Success("Installed " + target)
	case installer.OutcomeAlreadyExists, installer.OutcomeSameLocation:
		presenter.Warning("Already installed " + target)
	case installer.OutcomeFailed:
		presenter.Error(tr.Result.Err, "Failed to install "+target)
	}
}
