// Package entities defines core domain models and data structures.
package entities

// NoMirror is the mirrorControl value that suppresses the Maven mirrors block.
const NoMirror = "NO_MIRROR"

// Invocation captures the disambiguated positional arguments of a generate run
type Invocation struct {
	// ProjectName names the plugin project whose scripted tests receive
	// per-test-case resolver files. Empty means the scripted-test step is skipped.
	ProjectName string

	// MirrorControl is either NoMirror or any other value (including empty),
	// meaning "use the default mirrors".
	MirrorControl string
}

// UseMirrors reports whether the Maven mirrors block should be emitted
func (i Invocation) UseMirrors() bool {
	return i.MirrorControl != NoMirror
}
