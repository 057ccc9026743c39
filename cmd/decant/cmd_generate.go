package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decant-tools/decant/internal/domain-adapters/gateways"
	orchestrators "github.com/decant-tools/decant/internal/domain-orchestrators"
	"github.com/decant-tools/decant/internal/domain/entities"
	"github.com/decant-tools/decant/internal/domain/services"
	"github.com/decant-tools/decant/internal/external-adapters/gpg"
)

// Credential environment variables. All three must be set for credentials to
// be emitted into the Maven settings.
const (
	EnvPublishUser     = "PUBLISH_USER"
	EnvPublishPassword = "PUBLISH_PASSWORD"
	EnvPgpPassphrase   = "PGP_PASSPHRASE"
)

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [projectName] [mirrorControl]",
		Short: "Generate sbt resolver files and the Maven settings.xml",
		Long: `Generate writes the resolver configuration a CI worker needs:

  1. appends the release/snapshot resolvers to the global sbt resolver file
  2. writes a resolver file into every scripted-test case of <projectName>
  3. generates the Maven settings.xml (mirrors, credentials, publish profile)

A single argument containing the substring "MIRROR" (e.g. NO_MIRROR) is taken
as the mirror control value; any other single argument is the project name.
With two or more arguments the first is the project name and the second the
mirror control value; further arguments are ignored. Passing NO_MIRROR omits
the Maven mirrors block.

Credentials are read from ` + EnvPublishUser + `, ` + EnvPublishPassword + ` and
` + EnvPgpPassphrase + ` and emitted only when all three are set.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args)
		},
	}
}

func runGenerate(ctx context.Context, opts *rootOptions, args []string) error {
	logger, err := opts.newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := opts.resolveConfig()
	if err != nil {
		return err
	}

	inv := services.ParseInvocation(args)
	creds := credentialsFromEnv()

	orch := orchestrators.NewGenerateOrchestrator(
		gateways.NewSbtResolverWriter(),
		gateways.NewScriptedTestFinder(),
		gateways.NewMavenSettingsWriter(),
		gpg.NewPassphraseChecker(),
		logger,
		orchestrators.GenerateConfig{
			SbtDir:         cfg.SbtDir,
			MavenDir:       cfg.MavenDir,
			Workspace:      cfg.Workspace,
			SigningKeyPath: cfg.SigningKey,
		},
	)

	result, err := orch.Generate(ctx, inv, creds)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	return nil
}

func credentialsFromEnv() entities.CredentialSet {
	return entities.CredentialSet{
		Username:   os.Getenv(EnvPublishUser),
		Password:   os.Getenv(EnvPublishPassword),
		Passphrase: os.Getenv(EnvPgpPassphrase),
	}
}
