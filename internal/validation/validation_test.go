package validation

import "testing"

func TestValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"01/06/2024", true},
		{"31/12/1999", true},
		{"99/99/9999", true}, // shape only, no calendar check
		{"1/6/2024", false},
		{"01-06-2024", false},
		{"01/06/24", false},
		{"aa/bb/cccc", false},
		{"", false},
		{"01/06/2024 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidDate(tt.input); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10:00", true},
		{"23:59", true},
		{"99:99", true}, // shape only
		{"9:00", false},
		{"10.00", false},
		{"10:0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidTime(tt.input); got != tt.want {
				t.Errorf("ValidTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheckInteractionInput(t *testing.T) {
	if err := CheckInteractionInput("01/06/2024", "10:00"); err != nil {
		t.Errorf("valid input should pass, got %v", err)
	}
	if err := CheckInteractionInput("2024-06-01", "10:00"); err == nil {
		t.Error("ISO date should fail the DD/MM/YYYY check")
	}
	if err := CheckInteractionInput("01/06/2024", "10am"); err == nil {
		t.Error("non HH:MM time should fail")
	}
}
