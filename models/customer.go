package models

import (
	"slices"
	"strings"
)

// Customer is a client of the agency. The tax code is the natural key:
// unique within a store, required, and treated as opaque (no format
// validation happens at this layer). Every other field is a free-form
// string and may be empty.
//
// A customer owns its interactions: the slice order is insertion order and
// is preserved across save/load. Interactions are never shared between
// customers.
type Customer struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	TaxCode      string `validate:"required"`
	BirthDate    string
	Interactions []Interaction `validate:"dive"`
}

// NewCustomer builds a customer with an empty interaction list.
func NewCustomer(firstName, lastName, email, phone, address, taxCode, birthDate string) Customer {
	return Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Address:   address,
		TaxCode:   taxCode,
		BirthDate: birthDate,
	}
}

// FullName concatenates first and last name with a single space.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Equal reports whether two customers are the same, which is defined
// solely by tax code equality.
func (c Customer) Equal(other Customer) bool {
	return c.TaxCode == other.TaxCode
}

// Matches reports whether term occurs in any searchable field of the
// customer. First name, last name, email and phone are compared
// case-insensitively; the tax code is compared as-is.
func (c Customer) Matches(term string) bool {
	lower := strings.ToLower(term)
	for _, field := range []string{c.FirstName, c.LastName, c.Email, c.Phone} {
		if strings.Contains(strings.ToLower(field), lower) {
			return true
		}
	}
	return strings.Contains(c.TaxCode, term)
}

// AddInteraction appends an interaction to the customer's list.
func (c *Customer) AddInteraction(i Interaction) {
	c.Interactions = append(c.Interactions, i)
}

// RemoveInteraction removes the interaction at the given zero-based index,
// shifting subsequent entries down by one. It reports whether the index
// was within range.
func (c *Customer) RemoveInteraction(index int) bool {
	if index < 0 || index >= len(c.Interactions) {
		return false
	}
	c.Interactions = slices.Delete(c.Interactions, index, index+1)
	return true
}

// Clone returns a copy of the customer whose interaction list does not
// alias the original.
func (c Customer) Clone() Customer {
	clone := c
	clone.Interactions = slices.Clone(c.Interactions)
	return clone
}
