package vault

// Release is the version of the module. Tagged builds override it with
//
//	-ldflags "-X github.com/iov-one/vault.Release=v0.1.0"
var Release = "v0.1.0-dev"

// GitCommit is the commit the binary was built from, set by build flags.
var GitCommit = ""

// Version returns the release followed by the commit, when known.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
