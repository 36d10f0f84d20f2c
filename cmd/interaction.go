package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guidopacc/insurapro/internal/ui"
	"github.com/guidopacc/insurapro/internal/validation"
	"github.com/guidopacc/insurapro/models"
	"github.com/guidopacc/insurapro/store"
	"github.com/guidopacc/insurapro/types"
	"github.com/spf13/cobra"
)

// interactionCmd groups the interaction subcommands.
var interactionCmd = &cobra.Command{
	Use:     "interaction",
	Short:   "Manage customer interactions",
	Aliases: []string{"int"},
}

var interactionAddCmd = &cobra.Command{
	Use:   "add <tax-code>",
	Short: "Add an interaction to a customer",
	Long: `Add an interaction to the customer identified by tax code. The date
must have the shape DD/MM/YYYY and the time HH:MM.

When --date is not given the command prompts for every field.`,
	Args: cobra.ExactArgs(1),
	RunE: runInteractionAdd,
}

var interactionListCmd = &cobra.Command{
	Use:   "list <tax-code>",
	Short: "List a customer's interactions",
	Args:  cobra.ExactArgs(1),
	RunE:  runInteractionList,
}

var interactionRemoveCmd = &cobra.Command{
	Use:   "remove <tax-code> <position>",
	Short: "Remove an interaction by its position",
	Long: `Remove the interaction at the given position (1-based, as shown by
'interaction list') from the customer's history.`,
	Args: cobra.ExactArgs(2),
	RunE: runInteractionRemove,
}

var interactionFindCmd = &cobra.Command{
	Use:   "find <term>",
	Short: "Search interactions across all customers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInteractionFind,
}

var (
	interactionDate        string
	interactionTime        string
	interactionKind        string
	interactionDescription string
	interactionAgent       string
	interactionOutcome     string
)

func init() {
	rootCmd.AddCommand(interactionCmd)
	interactionCmd.AddCommand(interactionAddCmd)
	interactionCmd.AddCommand(interactionListCmd)
	interactionCmd.AddCommand(interactionRemoveCmd)
	interactionCmd.AddCommand(interactionFindCmd)

	interactionAddCmd.Flags().StringVar(&interactionDate, "date", "", "Date (DD/MM/YYYY)")
	interactionAddCmd.Flags().StringVar(&interactionTime, "time", "", "Time (HH:MM)")
	interactionAddCmd.Flags().StringVar(&interactionKind, "kind", models.KindOther.Display(), "Kind (Appointment, Contract, Call, Email, Other)")
	interactionAddCmd.Flags().StringVar(&interactionDescription, "description", "", "Description")
	interactionAddCmd.Flags().StringVar(&interactionAgent, "agent", "", "Agent")
	interactionAddCmd.Flags().StringVar(&interactionOutcome, "outcome", "", "Outcome")
}

func runInteractionAdd(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	var interaction models.Interaction
	if interactionDate == "" {
		interaction, err = promptInteraction()
		if err != nil {
			return err
		}
	} else {
		interaction = models.NewInteraction(
			interactionDate, interactionTime,
			models.ParseInteractionKind(interactionKind),
			interactionDescription, interactionAgent, interactionOutcome,
		)
	}

	return addInteraction(s, args[0], interaction)
}

// addInteraction validates the date and time formats, appends the
// interaction and persists the store.
func addInteraction(s store.CustomerStore, taxCode string, interaction models.Interaction) error {
	if err := validation.CheckInteractionInput(interaction.Date, interaction.Time); err != nil {
		PrintError("Invalid date or time format (expected DD/MM/YYYY and HH:MM).", err)
		return nil
	}
	if err := s.AddInteraction(taxCode, interaction); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			PrintError(fmt.Sprintf("No customer with tax code %s.", taxCode), err)
			return nil
		}
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	fmt.Println(ui.StyleSuccess.Render("Interaction added."))
	return nil
}

func runInteractionList(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	listInteractions(s, args[0])
	return nil
}

// listInteractions prints every interaction of one customer.
func listInteractions(s store.CustomerStore, taxCode string) {
	c, err := s.Get(taxCode)
	if err != nil {
		PrintError(fmt.Sprintf("No customer with tax code %s.", taxCode), err)
		return
	}
	if len(c.Interactions) == 0 {
		fmt.Println("No interactions recorded for " + c.FullName() + ".")
		return
	}
	fmt.Println(ui.Header("INTERACTIONS OF " + strings.ToUpper(c.FullName())))
	for i, interaction := range c.Interactions {
		fmt.Println(ui.InteractionDetails(i+1, interaction))
		fmt.Println()
	}
}

func runInteractionRemove(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	index, err := parsePosition(args[1])
	if err != nil {
		return err
	}
	return removeInteraction(s, args[0], index)
}

// removeInteraction removes the interaction at the zero-based index and
// persists the store.
func removeInteraction(s store.CustomerStore, taxCode string, index int) error {
	if err := s.RemoveInteraction(taxCode, index); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			PrintError(fmt.Sprintf("No interaction at position %d for customer %s.", index+1, taxCode), err)
			return nil
		}
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	fmt.Println(ui.StyleSuccess.Render("Interaction removed."))
	return nil
}

func runInteractionFind(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = s.Close() }()

	findInteractions(s, strings.Join(args, " "))
	return nil
}

// findInteractions prints every interaction matching term, with the
// owning customer as context.
func findInteractions(s store.CustomerStore, term string) {
	engine := GetQueryEngine(s)
	found := false
	for hit := range engine.SearchInteractions(term) {
		if !found {
			fmt.Println(ui.Header("INTERACTION SEARCH RESULTS"))
			found = true
		}
		fmt.Println(ui.StyleSubtle.Render("Customer: ") + hit.Customer.FullName() + ui.StyleSubtle.Render(" <"+hit.Customer.TaxCode+">"))
		fmt.Println(ui.InteractionDetails(hit.Index+1, hit.Interaction))
		fmt.Println()
	}
	if !found {
		fmt.Printf("No interactions found matching %q.\n", term)
	}
}

// promptInteraction collects the interaction fields interactively.
func promptInteraction() (models.Interaction, error) {
	date, err := promptString("Date (DD/MM/YYYY)")
	if err != nil {
		return models.Interaction{}, err
	}
	timeOfDay, err := promptString("Time (HH:MM)")
	if err != nil {
		return models.Interaction{}, err
	}
	kind, err := selectKind()
	if err != nil {
		return models.Interaction{}, err
	}
	description, err := promptString("Description")
	if err != nil {
		return models.Interaction{}, err
	}
	agent, err := promptString("Agent")
	if err != nil {
		return models.Interaction{}, err
	}
	outcome, err := promptString("Outcome")
	if err != nil {
		return models.Interaction{}, err
	}
	return models.NewInteraction(date, timeOfDay, kind, description, agent, outcome), nil
}
