package spmd

import (
	"testing"

	"golang.org/x/mod/semver"
)

// TestVersionConsistency verifies the version constants agree with the
// semantic version string.
func TestVersionConsistency(t *testing.T) {
	if !semver.IsValid(Version) {
		t.Fatalf("Version %q is not a valid semantic version", Version)
	}

	info := GetInfo()
	if info.Version != Version {
		t.Errorf("GetInfo().Version = %q, want %q", info.Version, Version)
	}
	if info.Model == "" {
		t.Error("GetInfo().Model is empty")
	}
}

// TestAtLeast covers the version-gate comparisons drivers rely on.
func TestAtLeast(t *testing.T) {
	tests := []struct {
		name string
		min  string
		want bool
	}{
		{name: "older minimum", min: "v0.0.1", want: true},
		{name: "exact minimum", min: Version, want: true},
		{name: "newer minimum", min: "v9.0.0", want: false},
		{name: "missing v prefix is invalid", min: "0.1.0", want: false},
		{name: "garbage is invalid", min: "latest", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AtLeast(tt.min); got != tt.want {
				t.Errorf("AtLeast(%q) = %v, want %v", tt.min, got, tt.want)
			}
		})
	}
}
