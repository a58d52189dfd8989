package updater

import (
	"testing"
)

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
		wantErr bool
	}{
		{"newer patch", "1.0.0", "1.0.1", true, false},
		{"newer minor", "1.0.0", "1.1.0", true, false},
		{"newer major", "1.0.0", "2.0.0", true, false},
		{"on latest", "1.2.3", "1.2.3", false, false},
		{"ahead of latest", "1.2.0", "1.1.0", false, false},
		{"v prefix current", "v1.0.0", "1.0.1", true, false},
		{"v prefix latest", "1.0.0", "v1.0.1", true, false},
		{"prerelease behind release", "1.0.0-beta", "1.0.0", true, false},
		{"invalid current", "notaversion", "1.0.0", false, true},
		{"invalid latest", "1.0.0", "notaversion", false, true},
		{"dev build", "dev", "1.0.0", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsUpdateAvailable(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}
