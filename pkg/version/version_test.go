package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	defer func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	}()

	tests := []struct {
		name      string
		version   string
		commit    string
		buildTime string
		want      string
	}{
		{
			name:    "development build",
			version: "0.0.0-dev",
			want:    "0.0.0-dev (development)",
		},
		{
			name:      "full release info",
			version:   "1.2.3",
			commit:    "abc1234",
			buildTime: "2026-08-30T10:20:30Z",
			want:      "1.2.3 (commit: abc1234, built at: 2026-08-30T10:20:30Z)",
		},
		{
			name:    "commit without build time",
			version: "1.2.3",
			commit:  "abc1234",
			want:    "1.2.3 (commit: abc1234)",
		},
		{
			name: "empty version falls back to dev",
			want: "0.0.0-dev (development)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, BuildTime = tt.version, tt.commit, tt.buildTime
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}
