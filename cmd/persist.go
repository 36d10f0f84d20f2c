package cmd

import (
	"errors"
	"fmt"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the data files",
	Long: `Write every customer and interaction back to the two data files.
Mutating commands already save on success; this forces a rewrite, which
also drops any malformed lines that were skipped during loading.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Save(); err != nil {
			return fmt.Errorf("save data: %w", err)
		}
		fmt.Println(ui.StyleSuccess.Render(fmt.Sprintf("Saved %d customer(s).", s.Count())))
		return nil
	},
}

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Reload the data files",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.NewFileCustomerStore()
		config := GetConfig()
		err := s.Initialize(map[string]string{
			"customerFile":    CustomerFilePath(config),
			"interactionFile": InteractionFilePath(config),
		})
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Load(); err != nil {
			if errors.Is(err, types.ErrNoData) {
				fmt.Println("No saved data found. Start adding customers.")
				return nil
			}
			return err
		}
		fmt.Println(ui.StyleSuccess.Render(fmt.Sprintf("Loaded %d customer(s).", s.Count())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
}
