package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// liteHuhTheme returns a huh theme using the formatter palette.
func liteHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// hoursForm collects a watch duration in hours.
func hoursForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("How long did you watch %s? (hours)", title)).
				Placeholder("2").
				Value(value).
				Validate(validatePositiveHours),
		),
	).WithTheme(liteHuhTheme()).WithShowHelp(false)
}

func confirmForm(question string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(liteHuhTheme()).WithShowHelp(false)
}

func promptHours(title string) (float64, error) {
	var raw string
	if err := hoursForm(title, &raw).Run(); err != nil {
		return 0, err
	}
	return parseHours(raw)
}

func promptConfirm(question string) (bool, error) {
	var ok bool
	if err := confirmForm(question, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// validatePositiveHours accepts a number greater than zero.
func validatePositiveHours(s string) error {
	_, err := parseHours(s)
	return err
}

func parseHours(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("enter a positive number of hours")
	}
	return v, nil
}

func (a *App) promptHours(title string) (float64, error) {
	if a.PromptHours != nil {
		return a.PromptHours(title)
	}
	return promptHours(title)
}

func (a *App) confirm(question string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(question)
	}
	return promptConfirm(question)
}
