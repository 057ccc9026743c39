package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decant-tools/decant/internal/domain-adapters/gateways"
)

func newOrganizePomsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "organize-poms",
		Short: "Collect generated pom files into a per-artifact layout",
		Long: `Organize-poms walks the workspace for pom files produced by previous
builds (anything under a target directory), strips their repository sections
and copies each into poms/<artifactId>/pom.xml for downstream analysis
tooling. Run it after a build and commit the result; check-poms verifies the
committed copies are current.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runOrganizePoms(opts)
		},
	}
}

func runOrganizePoms(opts *rootOptions) error {
	logger, err := opts.newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := opts.resolveConfig()
	if err != nil {
		return err
	}

	organizer := gateways.NewPomOrganizer()
	organized, err := organizer.Organize(cfg.Workspace, cfg.PomsDir)
	if err != nil {
		return err
	}

	if len(organized) == 0 {
		fmt.Println("No generated poms found")
		return nil
	}

	fmt.Printf("Organized %d pom(s) into %s:\n", len(organized), cfg.PomsDir)
	for _, artifactID := range organized {
		fmt.Printf("  - %s\n", artifactID)
	}
	return nil
}
