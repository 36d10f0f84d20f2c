package cmd

import (
	"errors"
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/models"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new customer",
	Long: `Add a new customer to the CRM. The tax code is the unique key of a
customer; every other field may be left empty.

When --tax-code is not given the command prompts for every field.

Examples:
  insurapro add --first-name Anna --last-name Rossi --tax-code RSSANN80A01H501Z
  insurapro add`,
	RunE: runAdd,
}

var (
	addFirstName string
	addLastName  string
	addEmail     string
	addPhone     string
	addAddress   string
	addTaxCode   string
	addBirthDate string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFirstName, "first-name", "", "First name")
	addCmd.Flags().StringVar(&addLastName, "last-name", "", "Last name")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Email address")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "Phone number")
	addCmd.Flags().StringVar(&addAddress, "address", "", "Address")
	addCmd.Flags().StringVar(&addTaxCode, "tax-code", "", "Tax code (unique key)")
	addCmd.Flags().StringVar(&addBirthDate, "birth-date", "", "Birth date (DD/MM/YYYY)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	c := models.NewCustomer(addFirstName, addLastName, addEmail, addPhone, addAddress, addTaxCode, addBirthDate)
	if addTaxCode == "" {
		c, err = promptCustomer()
		if err != nil {
			return err
		}
	}

	if err := addCustomer(s, c); err != nil {
		return err
	}
	fmt.Println(ui.StyleSuccess.Render("Customer added."))
	return nil
}

// addCustomer inserts the customer and persists the store. A duplicate tax
// code is reported to the user without failing the command.
func addCustomer(s store.CustomerStore, c models.Customer) error {
	if err := s.Add(c); err != nil {
		if errors.Is(err, types.ErrDuplicateKey) {
			PrintError(fmt.Sprintf("A customer with tax code %s already exists.", c.TaxCode), err)
			return nil
		}
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	return nil
}

// promptCustomer collects the seven customer fields interactively.
func promptCustomer() (models.Customer, error) {
	fields := []struct {
		label string
		dest  *string
	}{
		{"First name", new(string)},
		{"Last name", new(string)},
		{"Email", new(string)},
		{"Phone", new(string)},
		{"Address", new(string)},
		{"Tax code", new(string)},
		{"Birth date (DD/MM/YYYY)", new(string)},
	}
	for _, f := range fields {
		value, err := promptString(f.label)
		if err != nil {
			return models.Customer{}, err
		}
		*f.dest = value
	}
	return models.NewCustomer(
		*fields[0].dest, *fields[1].dest, *fields[2].dest, *fields[3].dest,
		*fields[4].dest, *fields[5].dest, *fields[6].dest,
	), nil
}
