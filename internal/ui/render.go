// Package ui renders customers and interactions for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/guidopacc/insurapro/models"
)

// Header renders a section title.
func Header(title string) string {
	return StyleHeader.Render(title)
}

// CustomerRow renders a one-line summary of a customer for list output.
// The position is 1-based, matching what the user sees elsewhere.
func CustomerRow(position int, c models.Customer) string {
	return fmt.Sprintf("%s %s %s  %s",
		StyleSubtle.Render(fmt.Sprintf("#%d", position)),
		StyleTitle.Render(c.FullName()),
		StyleSubtle.Render("<"+c.TaxCode+">"),
		StyleSubtle.Render(fmt.Sprintf("%d interaction(s)", len(c.Interactions))),
	)
}

// CustomerDetails renders the full field-per-line view of a customer.
func CustomerDetails(c models.Customer) string {
	var b strings.Builder
	field := func(label, value string) {
		b.WriteString(StyleFieldLabel.Render(label + ": "))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	field("First name", c.FirstName)
	field("Last name", c.LastName)
	field("Email", c.Email)
	field("Phone", c.Phone)
	field("Address", c.Address)
	field("Tax code", c.TaxCode)
	field("Birth date", c.BirthDate)
	field("Interactions", fmt.Sprintf("%d", len(c.Interactions)))
	return strings.TrimRight(b.String(), "\n")
}

// InteractionDetails renders the full field-per-line view of an
// interaction. The position is 1-based.
func InteractionDetails(position int, i models.Interaction) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Interaction #%d", position)))
	b.WriteByte('\n')
	field := func(label, value string) {
		b.WriteString(StyleFieldLabel.Render(label + ": "))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	field("Date", i.Date)
	field("Time", i.Time)
	field("Kind", i.Kind.Display())
	field("Agent", i.Agent)
	field("Description", i.Description)
	field("Outcome", i.Outcome)
	return strings.TrimRight(b.String(), "\n")
}
