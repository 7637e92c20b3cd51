package assets

import (
	"testing"
)

func TestGetSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantErr bool
	}{
		{"History seed", "history.yaml", false},
		{"Demo seed", "demo.yaml", false},
		{"Non-existent file", "nonexistent.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GetSeed(tt.seed)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetSeed(%q) expected an error", tt.seed)
				}
				return
			}
			if err != nil {
				t.Fatalf("Failed to get seed %s: %v", tt.seed, err)
			}
			if len(data) == 0 {
				t.Errorf("Seed %s is empty", tt.seed)
			}
		})
	}
}
