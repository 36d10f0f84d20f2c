package models

import "strings"

// InteractionKind classifies a customer interaction.
type InteractionKind string

const (
	KindAppointment InteractionKind = "Appointment"
	KindContract    InteractionKind = "Contract"
	KindCall        InteractionKind = "Call"
	KindEmail       InteractionKind = "Email"
	KindOther       InteractionKind = "Other"
)

// ParseInteractionKind maps a display string to an InteractionKind.
// The mapping is case-sensitive; any unrecognized string is KindOther.
func ParseInteractionKind(s string) InteractionKind {
	switch InteractionKind(s) {
	case KindAppointment, KindContract, KindCall, KindEmail, KindOther:
		return InteractionKind(s)
	default:
		return KindOther
	}
}

// Display returns the human-readable form of the kind, which is also the
// form persisted on disk.
func (k InteractionKind) Display() string {
	return string(k)
}

// Interaction records a single contact with a customer: an appointment, a
// signed contract, a call, an email, or anything else worth tracking.
// Date (DD/MM/YYYY) and Time (HH:MM) are kept as strings; their format is
// checked by the caller before constructing an Interaction, never here.
type Interaction struct {
	Date        string          `validate:"required"`
	Time        string          `validate:"required"`
	Kind        InteractionKind `validate:"required,oneof=Appointment Contract Call Email Other"`
	Description string
	Agent       string
	Outcome     string
}

// NewInteraction builds an interaction with all fields supplied.
func NewInteraction(date, timeOfDay string, kind InteractionKind, description, agent, outcome string) Interaction {
	return Interaction{
		Date:        date,
		Time:        timeOfDay,
		Kind:        kind,
		Description: description,
		Agent:       agent,
		Outcome:     outcome,
	}
}

// Matches reports whether term occurs in any searchable field of the
// interaction. Description, agent, outcome and the kind's display string
// are compared case-insensitively; date and time are compared as-is.
func (i Interaction) Matches(term string) bool {
	lower := strings.ToLower(term)
	for _, field := range []string{i.Description, i.Agent, i.Outcome, i.Kind.Display()} {
		if strings.Contains(strings.ToLower(field), lower) {
			return true
		}
	}
	return strings.Contains(i.Date, term) || strings.Contains(i.Time, term)
}
