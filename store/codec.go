package store

import (
	"strings"

	"github.com/guidopacc/insurapro/models"
	"github.com/guidopacc/insurapro/types"
)

// The on-disk format is one record per line, fields joined by a pipe, no
// header and no escaping. A field value containing the separator shifts the
// field count on reload and the line is skipped as malformed; the format is
// a fixed external contract, so this limitation is kept as-is.
const (
	fieldSeparator = "|"
	recordFields   = 7
)

// EncodeCustomer renders a customer as a single line:
// firstName|lastName|email|phone|address|taxCode|birthDate
func EncodeCustomer(c models.Customer) string {
	return strings.Join([]string{
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.TaxCode,
		c.BirthDate,
	}, fieldSeparator)
}

// DecodeCustomer parses a customer line. The line must split into exactly
// seven fields; anything else is an ErrMalformedRecord and the caller skips
// the line. The decoded customer has an empty interaction list.
func DecodeCustomer(line string) (models.Customer, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != recordFields {
		return models.Customer{}, types.MalformedRecordError(len(fields), recordFields)
	}
	return models.NewCustomer(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]), nil
}

// EncodeInteraction renders an interaction as a single line prefixed with
// the owning customer's tax code:
// taxCode|date|time|kind|description|agent|outcome
func EncodeInteraction(taxCode string, i models.Interaction) string {
	return strings.Join([]string{
		taxCode,
		i.Date,
		i.Time,
		i.Kind.Display(),
		i.Description,
		i.Agent,
		i.Outcome,
	}, fieldSeparator)
}

// DecodeInteraction parses an interaction line, returning the owning
// customer's tax code alongside the interaction. The line must split into
// exactly seven fields. An unrecognized kind string decodes silently as
// KindOther.
func DecodeInteraction(line string) (string, models.Interaction, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != recordFields {
		return "", models.Interaction{}, types.MalformedRecordError(len(fields), recordFields)
	}
	kind := models.ParseInteractionKind(fields[3])
	return fields[0], models.NewInteraction(fields[1], fields[2], kind, fields[4], fields[5], fields[6]), nil
}
