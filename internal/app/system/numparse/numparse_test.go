package numparse

import "testing"

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"4 guests", 4, true},
		{"12 guests max", 12, true},
		{"  8 guests", 8, true},
		{"4", 4, true},
		{"-2 guests", -2, true},
		{"many", 0, false},
		{"guests 4", 0, false},
		{"4.5 guests", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := LeadingInt(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("LeadingInt(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
