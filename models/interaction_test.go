package models

import "testing"

func TestParseInteractionKind(t *testing.T) {
	tests := []struct {
		input string
		want  InteractionKind
	}{
		{"Appointment", KindAppointment},
		{"Contract", KindContract},
		{"Call", KindCall},
		{"Email", KindEmail},
		{"Other", KindOther},
		{"appointment", KindOther}, // mapping is case-sensitive
		{"Telefonata", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseInteractionKind(tt.input); got != tt.want {
				t.Errorf("ParseInteractionKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInteraction_Matches(t *testing.T) {
	i := NewInteraction("01/06/2024", "10:00", KindAppointment, "Yearly checkup", "Luigi", "Booked")

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"description lowercase", "yearly", true},
		{"agent uppercase", "LUIGI", true},
		{"outcome", "booked", true},
		{"kind display", "appointment", true},
		{"date substring", "01/06", true},
		{"time substring", "10:", true},
		{"no match", "contract", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := i.Matches(tt.term); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestValidateStruct_Interaction(t *testing.T) {
	valid := NewInteraction("01/06/2024", "10:00", KindAppointment, "", "", "")
	if err := ValidateStruct(valid); err != nil {
		t.Errorf("valid interaction should pass validation, got %v", err)
	}

	invalid := NewInteraction("01/06/2024", "10:00", InteractionKind("Telefonata"), "", "", "")
	if err := ValidateStruct(invalid); err == nil {
		t.Error("a kind outside the closed set should fail validation")
	}
}
