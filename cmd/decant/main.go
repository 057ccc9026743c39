// Package main provides the decant CLI for configuring build-tool resolvers
// and credentials on CI workers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "decant",
		Short:         "Configure build-tool resolvers and credentials for CI workers",
		Long: `decant prepares a CI worker for building and publishing JVM build-tool
projects: it writes sbt resolver configuration (global and per-scripted-test),
generates a Maven settings.xml with mirrors, credentials and a publishing
profile, and keeps generated pom files organized and verified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a .decant.yml configuration file")
	cmd.PersistentFlags().StringVar(&opts.configRoot, "config-root", "", "Root directory for .sbt and .m2 (default: home directory)")
	cmd.PersistentFlags().StringVar(&opts.workspace, "workspace", "", "CI workspace root (default: $GITHUB_WORKSPACE, then the current directory)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newOrganizePomsCommand(opts),
		newCheckPomsCommand(opts),
	)

	return cmd
}
