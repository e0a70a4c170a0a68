package crypto

import (
	"strings"
	"testing"
)

// Requirement: Generate returns IDs of the requested length drawn from
// the URL-safe alphabet.
func TestIDGenerator_Generate(t *testing.T) {
	tests := []struct {
		name     string
		length   []int
		wantSize int
	}{
		{name: "default size", length: nil, wantSize: defaultSize},
		{name: "explicit size", length: []int{10}, wantSize: 10},
		{name: "zero falls back to default", length: []int{0}, wantSize: defaultSize},
		{name: "large size", length: []int{128}, wantSize: 128},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			g := NewIDGenerator()

			id, err := g.Generate(test.length...)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(id) != test.wantSize {
				t.Errorf("Generate() length = %d, want %d", len(id), test.wantSize)
			}
			for _, c := range id {
				if !strings.ContainsRune(defaultAlphabet, c) {
					t.Errorf("Generate() produced %q outside the alphabet", c)
				}
			}
		})
	}
}

// Requirement: consecutive IDs do not collide.
func TestIDGenerator_Generate_Unique(t *testing.T) {
	g := NewIDGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("Generate() produced duplicate ID %q", id)
		}
		seen[id] = true
	}
}
