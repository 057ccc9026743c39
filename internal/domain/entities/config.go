package entities

// GeneratorConfig holds the filesystem roots and optional overrides of a run.
// Everything here is injectable so tests never touch real per-user directories.
type GeneratorConfig struct {
	// ConfigRoot is the directory under which .sbt/ and .m2/ live.
	// Defaults to the user's home directory.
	ConfigRoot string

	// Workspace is the CI checkout root scanned for scripted tests and poms.
	// Defaults to GITHUB_WORKSPACE, then the current directory.
	Workspace string

	// SbtDir and MavenDir override the derived <ConfigRoot>/.sbt and
	// <ConfigRoot>/.m2 locations when set.
	SbtDir   string
	MavenDir string

	// PomsDir overrides the organized-pom directory, relative to Workspace
	// unless absolute.
	PomsDir string

	// SigningKey is an optional armored OpenPGP secret key checked against the
	// publishing passphrase before it is written into the Maven settings.
	SigningKey string
}
