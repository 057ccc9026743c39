// Package services contains pure domain logic with no I/O.
package services

import (
	"strings"

	"github.com/decant-tools/decant/internal/domain/entities"
)

// ParseInvocation disambiguates the raw positional arguments into an Invocation.
//
// With two or more arguments the first is the project name (possibly empty) and
// the second is the mirror control value. With exactly one argument, anything
// containing the substring "MIRROR" is taken as the mirror control value; any
// other single argument is the project name. The substring test is deliberate:
// callers pass values like "NO_MIRROR" positionally without a leading project
// name, and this is the only way to tell the two roles apart.
//
// The heuristic lives behind this function so an explicit-flag parser could
// replace it without touching anything downstream.
func ParseInvocation(args []string) entities.Invocation {
	switch {
	case len(args) >= 2:
		return entities.Invocation{ProjectName: args[0], MirrorControl: args[1]}
	case len(args) == 1:
		if strings.Contains(args[0], "MIRROR") {
			return entities.Invocation{MirrorControl: args[0]}
		}
		return entities.Invocation{ProjectName: args[0]}
	default:
		return entities.Invocation{}
	}
}
