package cmd

import (
	"errors"
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <tax-code>",
	Short: "Update a customer's fields",
	Long: `Update fields of the customer identified by tax code. Only flags
given a non-empty value are changed; a field can never be cleared to
empty, only replaced. The tax code itself is immutable.

When no field flag is given the command prompts for each field,
leaving blank answers unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateFirstName string
	updateLastName  string
	updateEmail     string
	updatePhone     string
	updateAddress   string
	updateBirthDate string
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "New first name")
	updateCmd.Flags().StringVar(&updateLastName, "last-name", "", "New last name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New email address")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "New phone number")
	updateCmd.Flags().StringVar(&updateAddress, "address", "", "New address")
	updateCmd.Flags().StringVar(&updateBirthDate, "birth-date", "", "New birth date")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	taxCode := args[0]
	updates := map[string]string{
		"firstName": updateFirstName,
		"lastName":  updateLastName,
		"email":     updateEmail,
		"phone":     updatePhone,
		"address":   updateAddress,
		"birthDate": updateBirthDate,
	}

	if !anyValue(updates) {
		updates, err = promptUpdates(s, taxCode)
		if err != nil {
			return err
		}
		if updates == nil {
			return nil // customer not found, already reported
		}
	}

	if err := updateCustomer(s, taxCode, updates); err != nil {
		return err
	}
	return nil
}

// updateCustomer applies the updates and persists the store.
func updateCustomer(s store.CustomerStore, taxCode string, updates map[string]string) error {
	c, err := s.Update(taxCode, updates)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			PrintError(fmt.Sprintf("No customer with tax code %s.", taxCode), err)
			return nil
		}
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	fmt.Println(ui.StyleSuccess.Render("Customer updated: " + c.FullName()))
	return nil
}

// promptUpdates collects replacement values interactively; blank answers
// keep the current value.
func promptUpdates(s store.CustomerStore, taxCode string) (map[string]string, error) {
	c, err := s.Get(taxCode)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			PrintError(fmt.Sprintf("No customer with tax code %s.", taxCode), err)
			return nil, nil
		}
		return nil, err
	}
	fmt.Println("Updating " + c.FullName() + ". Leave a field blank to keep its value.")

	updates := make(map[string]string)
	for _, f := range []struct{ key, label string }{
		{"firstName", "First name"},
		{"lastName", "Last name"},
		{"email", "Email"},
		{"phone", "Phone"},
		{"address", "Address"},
		{"birthDate", "Birth date"},
	} {
		value, err := promptKeep(f.label)
		if err != nil {
			return nil, err
		}
		updates[f.key] = value
	}
	return updates, nil
}

func anyValue(m map[string]string) bool {
	for _, v := range m {
		if v != "" {
			return true
		}
	}
	return false
}
