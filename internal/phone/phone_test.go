package phone

import "testing"

func TestValidateSpanish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"valid", "+34666777888", true},
		{"too_short", "+3466677788", false},
		{"other_country", "+44666777888", false},
		{"too_long", "+346667778889", false},
		{"no_plus", "0034666777888", false},
		{"letters", "+34666777abc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ValidateSpanish(tt.phone); got != tt.want {
				t.Errorf("ValidateSpanish(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
