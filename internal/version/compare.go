package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckSchemaCompatibility checks whether a results store created with
// storedVersion can be read and written by a binary using currentVersion.
// Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
//
// Examples:
//   - Current 1.2.0, Stored 1.2.0 -> OK (exact match)
//   - Current 1.2.1, Stored 1.2.0 -> OK (patch differs)
//   - Current 1.3.0, Stored 1.2.0 -> ERROR (minor differs)
//   - Current 2.0.0, Stored 1.2.0 -> ERROR (major differs)
func CheckSchemaCompatibility(currentVersion, storedVersion string) error {
	currentVersion = strings.TrimPrefix(currentVersion, "v")
	storedVersion = strings.TrimPrefix(storedVersion, "v")

	if currentVersion == "main" || storedVersion == "main" {
		return nil
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid current schema version '%s': %w", currentVersion, err)
	}

	stored, err := semver.NewVersion(storedVersion)
	if err != nil {
		return fmt.Errorf("invalid stored schema version '%s': %w", storedVersion, err)
	}

	if current.Major() != stored.Major() {
		return fmt.Errorf("major version mismatch: binary writes schema %d.x.x but store has %d.x.x",
			current.Major(), stored.Major())
	}

	if current.Minor() != stored.Minor() {
		return fmt.Errorf("minor version mismatch: binary writes schema %d.%d.x but store has %d.%d.x",
			current.Major(), current.Minor(),
			stored.Major(), stored.Minor())
	}

	return nil
}
