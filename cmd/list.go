package cmd

import (
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all customers",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer func() { _ = s.Close() }()

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
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
