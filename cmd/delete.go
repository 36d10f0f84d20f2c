package cmd

import (
	"errors"
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <tax-code>",
	Short:   "Delete a customer and all of its interactions",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	return deleteCustomer(s, args[0], deleteYes)
}

// deleteCustomer confirms and removes a customer, persisting the store.
// Removal cascades: the customer's interactions go with it.
func deleteCustomer(s store.CustomerStore, taxCode string, skipConfirm bool) error {
	c, err := s.Get(taxCode)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			PrintError(fmt.Sprintf("No customer with tax code %s.", taxCode), err)
			return nil
		}
		return err
	}

	if !skipConfirm && !confirm(fmt.Sprintf("Delete %s and %d interaction(s)", c.FullName(), len(c.Interactions))) {
		fmt.Println("Operation cancelled.")
		return nil
	}

	if err := s.Remove(taxCode); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	fmt.Println(ui.StyleSuccess.Render("Customer deleted."))
	return nil
}
