package entities

import "encoding/xml"

// Maven settings element identifiers baked into the generator
const (
	RepoID            = "decant-releases"
	SnapshotRepoID    = "decant-snapshots"
	ProfileID         = "decant"
	RedirectMirrorID  = "decant-releases-redirect"
	HTTPBlockMirrorID = "maven-default-http-blocker"
)

// MavenSettings models the generated settings.xml document. Optional blocks are
// pointers so an absent block is omitted entirely rather than emitted empty.
type MavenSettings struct {
	XMLName        xml.Name       `xml:"settings"`
	Xmlns          string         `xml:"xmlns,attr"`
	XmlnsXsi       string         `xml:"xmlns:xsi,attr"`
	SchemaLocation string         `xml:"xsi:schemaLocation,attr"`
	Mirrors        *MirrorList    `xml:"mirrors,omitempty"`
	Servers        *ServerList    `xml:"servers,omitempty"`
	Profiles       ProfileList    `xml:"profiles"`
	ActiveProfiles ActiveProfiles `xml:"activeProfiles"`
}

// MirrorList wraps the mirrors block
type MirrorList struct {
	Mirrors []Mirror `xml:"mirror"`
}

// Mirror redirects requests for one repository to another URL, optionally
// blocking a protocol outright
type Mirror struct {
	ID       string `xml:"id"`
	Name     string `xml:"name,omitempty"`
	URL      string `xml:"url"`
	MirrorOf string `xml:"mirrorOf"`
	Blocked  bool   `xml:"blocked,omitempty"`
}

// ServerList wraps the servers block
type ServerList struct {
	Servers []Server `xml:"server"`
}

// Server carries repository credentials
type Server struct {
	ID       string `xml:"id"`
	Username string `xml:"username"`
	Password string `xml:"password"`
}

// ProfileList wraps the profiles block
type ProfileList struct {
	Profiles []Profile `xml:"profile"`
}

// Profile defines repositories, plugin repositories and optional properties
type Profile struct {
	ID                 string             `xml:"id"`
	Properties         *ProfileProperties `xml:"properties,omitempty"`
	Repositories       []Repository       `xml:"repositories>repository"`
	PluginRepositories []Repository       `xml:"pluginRepositories>pluginRepository"`
}

// ProfileProperties carries the signing passphrase when credentials are present
type ProfileProperties struct {
	GpgPassphrase string `xml:"gpg.passphrase"`
}

// Repository is a profile repository or plugin repository entry
type Repository struct {
	ID        string            `xml:"id"`
	URL       string            `xml:"url"`
	Releases  *RepositoryPolicy `xml:"releases,omitempty"`
	Snapshots *RepositoryPolicy `xml:"snapshots,omitempty"`
}

// RepositoryPolicy toggles release or snapshot artifact resolution
type RepositoryPolicy struct {
	Enabled bool `xml:"enabled"`
}

// ActiveProfiles activates the generated profile by id
type ActiveProfiles struct {
	ActiveProfiles []string `xml:"activeProfile"`
}
