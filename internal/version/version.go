package version

// Version is the current version of the montecarlo binary. It is stamped on
// every stored result row.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-montecarlo/internal/version.Version=1.2.3"
// The value "main" indicates a development build.
var Version = "main"

// SchemaVersion is the version of the results table layout written by this
// binary. Bump the minor version when columns are added, the major version
// when existing columns change meaning.
const SchemaVersion = "1.0.0"

// GetVersion returns the current version of the binary.
func GetVersion() string {
	return Version
}
