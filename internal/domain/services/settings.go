package services

import "github.com/decant-tools/decant/internal/domain/entities"

// Maven settings schema constants
const (
	settingsXmlns          = "http://maven.apache.org/SETTINGS/1.0.0"
	settingsXmlnsXsi       = "http://www.w3.org/2001/XMLSchema-instance"
	settingsSchemaLocation = "http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd"
)

// BuildMavenSettings assembles the settings document for one invocation.
// The mirrors block is dropped entirely when mirrors are disabled, and the
// servers block plus the signing-passphrase property are dropped unless the
// credential set is complete.
func BuildMavenSettings(inv entities.Invocation, creds entities.CredentialSet) entities.MavenSettings {
	settings := entities.MavenSettings{
		Xmlns:          settingsXmlns,
		XmlnsXsi:       settingsXmlnsXsi,
		SchemaLocation: settingsSchemaLocation,
		Profiles: entities.ProfileList{
			Profiles: []entities.Profile{buildProfile(creds)},
		},
		ActiveProfiles: entities.ActiveProfiles{
			ActiveProfiles: []string{entities.ProfileID},
		},
	}

	if inv.UseMirrors() {
		settings.Mirrors = &entities.MirrorList{
			Mirrors: []entities.Mirror{
				{
					ID:       entities.RedirectMirrorID,
					Name:     "Redirect release repository",
					URL:      entities.ReleaseRepoURL,
					MirrorOf: entities.RepoID,
				},
				{
					ID:       entities.HTTPBlockMirrorID,
					Name:     "Pseudo repository to mirror external repositories initially using HTTP.",
					URL:      "http://0.0.0.0/",
					MirrorOf: "external:http:*",
					Blocked:  true,
				},
				{
					ID:       "central-redirect",
					Name:     "Redirect central repository",
					URL:      entities.ReleaseRepoURL,
					MirrorOf: "central",
				},
			},
		}
	}

	if creds.Complete() {
		settings.Servers = &entities.ServerList{
			Servers: []entities.Server{
				{
					ID:       entities.RepoID,
					Username: creds.Username,
					Password: creds.Password,
				},
			},
		}
	}

	return settings
}

func buildProfile(creds entities.CredentialSet) entities.Profile {
	disabled := &entities.RepositoryPolicy{Enabled: false}
	enabled := &entities.RepositoryPolicy{Enabled: true}

	repositories := []entities.Repository{
		{
			ID:        entities.RepoID,
			URL:       entities.ReleaseRepoURL,
			Snapshots: disabled,
		},
		{
			ID:        entities.SnapshotRepoID,
			URL:       entities.SnapshotRepoURL,
			Snapshots: enabled,
		},
	}

	profile := entities.Profile{
		ID:           entities.ProfileID,
		Repositories: repositories,
		PluginRepositories: []entities.Repository{
			{
				ID:        entities.RepoID,
				URL:       entities.ReleaseRepoURL,
				Snapshots: disabled,
			},
			{
				ID:        entities.SnapshotRepoID,
				URL:       entities.SnapshotRepoURL,
				Snapshots: enabled,
			},
		},
	}

	if creds.Complete() {
		profile.Properties = &entities.ProfileProperties{GpgPassphrase: creds.Passphrase}
	}

	return profile
}
