package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/strikelab/commandstrike/pkg/catalog"
)

// customModelChoice marks the "enter a model name yourself" menu entry.
const customModelChoice = "custom"

// Actions offered after a command has been generated.
const (
	actionSimulate = "simulate"
	actionExplain  = "explain"
	actionSkip     = "skip"
)

func recommendedModels() []catalog.ModelInfo {
	return catalog.Recommended()
}

// selectModel shows the model selection menu: the recommended catalog plus a
// free-form entry for any other model name.
func selectModel() (string, error) {
	models := recommendedModels()

	options := make([]huh.Option[string], 0, len(models)+1)
	for _, m := range models {
		label := fmt.Sprintf("%s (%s) - %s", m.Name, m.Size, m.Description)
		options = append(options, huh.NewOption(label, m.Name))
	}
	options = append(options, huh.NewOption("Enter custom model name", customModelChoice))

	var choice string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select model").
			Options(options...).
			Value(&choice),
	)).Run(); err != nil {
		return "", err
	}

	if choice != customModelChoice {
		return choice, nil
	}

	var name string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Model name").
			Validate(validateModelName).
			Value(&name),
	)).Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// confirmPull asks whether a missing model should be pulled from the
// repository.
func confirmPull(model string) (bool, error) {
	var pull bool
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Model '%s' is not available. Pull it from the Ollama repository?", model)).
			Value(&pull),
	)).Run(); err != nil {
		return false, err
	}

	return pull, nil
}

// selectAction asks what to do with a freshly generated command.
func selectAction() (string, error) {
	var action string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Would you like to:").
			Options(
				huh.NewOption("Execute this command (simulation only)", actionSimulate),
				huh.NewOption("Explain what this command does", actionExplain),
				huh.NewOption("Skip and enter a new request", actionSkip),
			).
			Value(&action),
	)).Run(); err != nil {
		return "", err
	}

	return action, nil
}

func validateModelName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("model name cannot be empty")
	}

	return nil
}
