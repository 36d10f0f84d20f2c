package cmd

import (
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/store"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive menu for common CRM operations",
	Long: `Interactive mode provides a guided menu mirroring the classic console
CRM: customer management, interaction management and persistence, all
driven by arrow keys and prompts.`,
	Aliases: []string{"menu"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer func() { _ = s.Close() }()

		fmt.Println(ui.StyleTitle.Render("Welcome to InsuraPro CRM!"))
		fmt.Println(ui.StyleSubtle.Render("Use arrow keys to navigate, Enter to select, Ctrl+C to exit."))
		fmt.Println()

		for runMainMenu(s) {
		}

		if s.Count() > 0 && confirm("Save before exiting") {
			if err := s.Save(); err != nil {
				PrintError("Could not save the data files.", err)
			}
		}
		fmt.Println("Goodbye!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// MenuItem represents a menu option
type MenuItem struct {
	Label  string
	Action func() error
}

// runMenu displays a menu and executes the chosen action. It reports
// whether the menu should be shown again.
func runMenu(label string, items []MenuItem, exitLabel string) bool {
	labels := make([]string, 0, len(items)+1)
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	labels = append(labels, exitLabel)

	sel := promptui.Select{
		Label: label,
		Items: labels,
		Size:  len(labels),
	}
	index, _, err := sel.Run()
	if err != nil || index == len(items) {
		return false
	}
	if err := items[index].Action(); err != nil {
		PrintError("The operation failed.", err)
	}
	fmt.Println()
	return true
}

func runMainMenu(s store.CustomerStore) bool {
	items := []MenuItem{
		{"Add new customer", func() error { return menuAddCustomer(s) }},
		{fmt.Sprintf("View all customers (%d)", s.Count()), func() error { return menuListCustomers(s) }},
		{"Update customer", func() error { return menuUpdateCustomer(s) }},
		{"Delete customer", func() error { return menuDeleteCustomer(s) }},
		{"Search customers", func() error { return menuFindCustomers(s) }},
		{"Manage interactions", func() error { return menuInteractions(s) }},
		{"Save data", func() error { return s.Save() }},
		{"Reload data", func() error { return menuReload(s) }},
	}
	return runMenu("MAIN MENU", items, "Exit")
}

func menuInteractions(s store.CustomerStore) error {
	items := []MenuItem{
		{"Add interaction", func() error { return menuAddInteraction(s) }},
		{"View customer interactions", func() error { return menuListInteractions(s) }},
		{"Remove interaction", func() error { return menuRemoveInteraction(s) }},
		{"Search interactions", func() error { return menuFindInteractions(s) }},
	}
	for runMenu("INTERACTIONS", items, "Back") {
	}
	return nil
}

func menuAddCustomer(s store.CustomerStore) error {
	c, err := promptCustomer()
	if err != nil {
		return err
	}
	return addCustomer(s, c)
}

func menuListCustomers(s store.CustomerStore) error {
	customers := s.Customers()
	if len(customers) == 0 {
		fmt.Println("No customers in the system.")
		return nil
	}
	fmt.Println(ui.Header("CUSTOMERS"))
	for i, c := range customers {
		fmt.Println(ui.CustomerRow(i+1, c))
	}
	return nil
}

func menuUpdateCustomer(s store.CustomerStore) error {
	taxCode, err := promptString("Tax code of the customer to update")
	if err != nil {
		return err
	}
	updates, err := promptUpdates(s, taxCode)
	if err != nil || updates == nil {
		return err
	}
	return updateCustomer(s, taxCode, updates)
}

func menuDeleteCustomer(s store.CustomerStore) error {
	taxCode, err := promptString("Tax code of the customer to delete")
	if err != nil {
		return err
	}
	return deleteCustomer(s, taxCode, false)
}

func menuFindCustomers(s store.CustomerStore) error {
	term, err := promptString("Search term")
	if err != nil {
		return err
	}
	findCustomers(s, term)
	return nil
}

func menuAddInteraction(s store.CustomerStore) error {
	taxCode, err := promptString("Tax code of the customer")
	if err != nil {
		return err
	}
	interaction, err := promptInteraction()
	if err != nil {
		return err
	}
	return addInteraction(s, taxCode, interaction)
}

func menuListInteractions(s store.CustomerStore) error {
	taxCode, err := promptString("Tax code of the customer")
	if err != nil {
		return err
	}
	listInteractions(s, taxCode)
	return nil
}

func menuRemoveInteraction(s store.CustomerStore) error {
	taxCode, err := promptString("Tax code of the customer")
	if err != nil {
		return err
	}
	position, err := promptString("Interaction position (as shown by the list)")
	if err != nil {
		return err
	}
	index, err := parsePosition(position)
	if err != nil {
		return err
	}
	return removeInteraction(s, taxCode, index)
}

func menuFindInteractions(s store.CustomerStore) error {
	term, err := promptString("Search term")
	if err != nil {
		return err
	}
	findInteractions(s, term)
	return nil
}

func menuReload(s store.CustomerStore) error {
	if err := s.Load(); err != nil {
		fmt.Println("No saved data found. Start adding customers.")
		return nil
	}
	fmt.Println(ui.StyleSuccess.Render(fmt.Sprintf("Loaded %d customer(s).", s.Count())))
	return nil
}
