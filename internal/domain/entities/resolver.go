package entities

import "fmt"

// Resolver URLs are baked into the generator and not user-configurable.
const (
	ReleaseRepoURL  = "https://repo.decant.build/artifactory/libs-release"
	SnapshotRepoURL = "https://repo.decant.build/artifactory/libs-snapshot"
)

// ResolverEntry is a named sbt resolver declaration
type ResolverEntry struct {
	Name string
	URL  string
}

// SbtLine renders the entry as an sbt resolver statement
func (r ResolverEntry) SbtLine() string {
	return fmt.Sprintf("resolvers += %q at %q", r.Name, r.URL)
}

// DefaultResolvers returns the fixed release/snapshot resolver pair
func DefaultResolvers() []ResolverEntry {
	return []ResolverEntry{
		{Name: "Artifactory Releases", URL: ReleaseRepoURL},
		{Name: "Artifactory Snapshots", URL: SnapshotRepoURL},
	}
}
