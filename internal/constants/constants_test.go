package constants

import "testing"

func TestIsNullValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare null", "null", true},
		{"null with newline", "null\n", true},
		{"null with spaces", "  null  ", true},
		{"empty string", "", false},
		{"zero", "0", false},
		{"uppercase", "NULL", false},
		{"null as substring", "nullable", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNullValue(tt.input); got != tt.want {
				t.Errorf("IsNullValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProviderKindsDistinct(t *testing.T) {
	if ProviderADB == ProviderLocal {
		t.Fatalf("provider kinds must differ, both are %q", ProviderADB)
	}
}
