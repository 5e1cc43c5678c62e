package spmd

import "golang.org/x/mod/semver"

// Version information for the Pure-Go SPMD library.
const (
	// Version is the current version of the coordination library, in
	// semantic-version form.
	Version = "v0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the coordination library.
type Info struct {
	// Version is the library version string.
	Version string

	// Model is the execution model implemented.
	Model string
}

// GetInfo returns information about the coordination library.
//
// Example:
//
//	info := spmd.GetInfo()
//	fmt.Printf("spmdlib %s (%s)\n", info.Version, info.Model)
func GetInfo() Info {
	return Info{
		Version: Version,
		Model:   "SPMD (single program, multiple data)",
	}
}

// AtLeast reports whether the library version is min or newer. min must be
// a valid semantic version ("v0.1.0"); an invalid min reports false.
//
// Drivers written against a later API surface can gate on it:
//
//	if !spmd.AtLeast("v0.1.0") {
//		log.Fatal("spmdlib too old")
//	}
func AtLeast(min string) bool {
	if !semver.IsValid(min) {
		return false
	}
	return semver.Compare(Version, min) >= 0
}
