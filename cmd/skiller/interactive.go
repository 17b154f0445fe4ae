package main

import (
	"context"
	"fmt"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/presenter"
	"github.com/skillerhq/skiller/pkg/prompt"
)

// runInteractive runs one round of the interactive flow: pick a command,
// then its parameters. A cancelled prompt unwinds the current step only.
func runInteractive(ctx context.Context, cfg *config.Config, p prompt.Prompter) {
	command, ok := p.SelectOne("Choose a command:", []string{"dd", "list", "install", "quit"}, "dd")
	if !ok || command == "quit" {
		return
	}

	switch command {
	case "dd":
		runDiscoverSimple(ctx, cfg)
	case "list":
		runListInteractive(ctx, cfg, p)
	case "install":
		runInstall(ctx, cfg, p)
	}
}

func runListInteractive(ctx context.Context, cfg *config.Config, p prompt.Prompter) {
	agents := append([]string{"All"}, cfg.AgentNames()...)
	choice, ok := p.SelectOne("Choose agent to list skills for:", agents, "All")
	if !ok {
		return
	}

	if choice == "All" {
		paths := cfg.AllPaths()
		if len(paths) == 0 {
			presenter.Info("No configured agent paths to list.")
			return
		}
		listSkillsForPaths(ctx, cfg, paths)
		return
	}

	dirs := cfg.AgentDirs[choice]
	paths := append(append([]string{}, dirs.User...), dirs.Project...)
	if len(paths) == 0 {
		presenter.Info(fmt.Sprintf("No configured paths for agent '%s'.", choice))
		return
	}
	listSkillsForPaths(ctx, cfg, paths)
}
