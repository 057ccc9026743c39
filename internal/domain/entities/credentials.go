package entities

// CredentialSet holds the publishing credentials sourced from the CI environment.
// Either all three values are present and credentials are emitted into the Maven
// settings, or the set is treated as absent — partial sets are never emitted.
type CredentialSet struct {
	Username   string
	Password   string
	Passphrase string
}

// Complete reports whether all three credential values are non-empty
func (c CredentialSet) Complete() bool {
	return c.Username != "" && c.Password != "" && c.Passphrase != ""
}
