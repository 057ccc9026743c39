package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decant-tools/decant/internal/domain-adapters/gateways"
)

func newCheckPomsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-poms",
		Short: "Verify the organized poms are committed",
		Long: `Check-poms fails when the organized pom directory contains uncommitted
changes, signaling that organize-poms output is stale and needs to be
regenerated and committed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckPoms(cmd.Context(), opts)
		},
	}
}

func runCheckPoms(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return err
	}

	pomsPath := cfg.PomsDir
	if rel, err := filepath.Rel(cfg.Workspace, cfg.PomsDir); err == nil && !strings.HasPrefix(rel, "..") {
		pomsPath = rel
	}

	runner := gateways.NewCommandRunner()
	result, err := runner.Run(ctx, gateways.RunConfig{
		Command:    "git",
		Args:       []string{"status", "--porcelain", "--", pomsPath},
		WorkingDir: cfg.Workspace,
	})
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("git status failed: %s", strings.TrimSpace(result.Stderr))
	}

	dirty := strings.TrimSpace(result.Stdout)
	if dirty == "" {
		fmt.Println("Organized poms are up to date")
		return nil
	}

	fmt.Println("Uncommitted organized poms:")
	for _, line := range strings.Split(dirty, "\n") {
		fmt.Printf("  %s\n", line)
	}
	return fmt.Errorf("organized poms are stale: run 'decant organize-poms' and commit the result")
}
