package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchemaCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		stored        string
		expectError   bool
		errorContains string
	}{
		{
			name:    "exact match",
			current: "1.2.0",
			stored:  "1.2.0",
		},
		{
			name:    "current patch higher",
			current: "1.2.1",
			stored:  "1.2.0",
		},
		{
			name:    "stored patch higher",
			current: "1.2.0",
			stored:  "1.2.5",
		},
		{
			name:          "current minor higher",
			current:       "1.3.0",
			stored:        "1.2.0",
			expectError:   true,
			errorContains: "minor version mismatch",
		},
		{
			name:          "current minor lower",
			current:       "1.1.0",
			stored:        "1.2.0",
			expectError:   true,
			errorContains: "minor version mismatch",
		},
		{
			name:          "major version differs",
			current:       "2.0.0",
			stored:        "1.2.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:    "current is main",
			current: "main",
			stored:  "1.2.0",
		},
		{
			name:    "stored is main",
			current: "1.2.0",
			stored:  "main",
		},
		{
			name:    "v prefix on both",
			current: "v1.2.0",
			stored:  "v1.2.3",
		},
		{
			name:    "prerelease version",
			current: "1.2.0-alpha",
			stored:  "1.2.0",
		},
		{
			name:          "invalid current version",
			current:       "not-a-version",
			stored:        "1.2.0",
			expectError:   true,
			errorContains: "invalid current schema version",
		},
		{
			name:          "empty stored version",
			current:       "1.2.0",
			stored:        "",
			expectError:   true,
			errorContains: "invalid stored schema version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSchemaCompatibility(tt.current, tt.stored)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	assert.Equal(t, Version, v)
}

func TestSchemaVersionIsCompatibleWithItself(t *testing.T) {
	require.NoError(t, CheckSchemaCompatibility(SchemaVersion, SchemaVersion))
}
