// Package buildversion holds the engine's own version, stamped at link
// time and consumed by internal/plan for its exact-version gate.
package buildversion

// version is overwritten at build time via:
//
//	go build -ldflags "-X github.com/gravitational/rtinstall/internal/buildversion.version=1.4.0"
//
// and defaults to a development placeholder otherwise.
var version = "0.0.0-dev"

// Version returns the engine's own semantic version.
func Version() string {
	return version
}
