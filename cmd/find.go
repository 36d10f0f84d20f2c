package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [term]",
	Short: "Search customers",
	Long: `Search customers by a case-insensitive substring of first name, last
name, email or phone, or an exact substring of the tax code.

With --first-name and --last-name the search is instead an exact match
on both fields, returning the first customer found.`,
	Aliases: []string{"search"},
	RunE:    runFind,
}

var (
	findFirstName string
	findLastName  string
)

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVar(&findFirstName, "first-name", "", "Exact first name")
	findCmd.Flags().StringVar(&findLastName, "last-name", "", "Exact last name")
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	if findFirstName != "" || findLastName != "" {
		findCustomerByName(s, findFirstName, findLastName)
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("provide a search term or --first-name/--last-name")
	}
	findCustomers(s, strings.Join(args, " "))
	return nil
}

// findCustomerByName looks up the first customer whose first and last
// name both match exactly.
func findCustomerByName(s store.CustomerStore, firstName, lastName string) {
	i, err := s.FindByName(firstName, lastName)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			fmt.Printf("No customer named %s %s.\n", firstName, lastName)
			return
		}
		PrintError("The search failed.", err)
		return
	}
	c := s.Customers()[i]
	fmt.Println(ui.CustomerRow(i+1, c))
	fmt.Println(ui.CustomerDetails(c))
}

// findCustomers prints every customer matching term.
func findCustomers(s store.CustomerStore, term string) {
	engine := GetQueryEngine(s)
	found := false
	for i, c := range engine.SearchCustomers(term) {
		if !found {
			fmt.Println(ui.Header("SEARCH RESULTS"))
			found = true
		}
		fmt.Println(ui.CustomerRow(i+1, c))
		fmt.Println(ui.CustomerDetails(c))
		fmt.Println()
	}
	if !found {
		fmt.Printf("No customers found matching %q.\n", term)
	}
}
