package cmd

import (
	"fmt"
	"strconv"

	"github.com/guidopacc/insurapro/models"
	"github.com/manifoldco/promptui"
)

// promptString asks the user for a free-form value. An empty answer is
// accepted.
func promptString(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

// promptKeep asks for a replacement value during an update; a blank answer
// means "keep the current value".
func promptKeep(label string) (string, error) {
	prompt := promptui.Prompt{Label: label + " (leave blank to keep)"}
	return prompt.Run()
}

// confirm asks a yes/no question and reports whether the user confirmed.
func confirm(label string) bool {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	return err == nil
}

// selectKind presents the closed set of interaction kinds.
func selectKind() (models.InteractionKind, error) {
	sel := promptui.Select{
		Label: "Interaction kind",
		Items: []string{
			models.KindAppointment.Display(),
			models.KindContract.Display(),
			models.KindCall.Display(),
			models.KindEmail.Display(),
			models.KindOther.Display(),
		},
	}
	_, result, err := sel.Run()
	if err != nil {
		return models.KindOther, err
	}
	return models.ParseInteractionKind(result), nil
}

// parsePosition converts a 1-based position argument, as shown to the
// user, into a zero-based index.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("position must be a number starting from 1, got %q", arg)
	}
	return n - 1, nil
}
