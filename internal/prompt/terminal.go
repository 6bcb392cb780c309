package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted reports that the user cancelled a prompt instead of answering.
var ErrAborted = errors.New("prompt aborted")

// Terminal renders prompts as interactive terminal forms.
type Terminal struct{}

func (Terminal) Confirm(_, title string, defaultYes bool) (bool, error) {
	confirmed := defaultYes
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)
	if err := field.Run(); err != nil {
		return false, terminalError(title, err)
	}
	return confirmed, nil
}

func (Terminal) Select(_, title string, options []Option) (string, error) {
	var choice string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&choice)
	if err := field.Run(); err != nil {
		return "", terminalError(title, err)
	}
	return choice, nil
}

func (Terminal) MultiSelect(_, title string, options []Option) ([]string, error) {
	var choices []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&choices)
	if err := field.Run(); err != nil {
		return nil, terminalError(title, err)
	}
	return choices, nil
}

func (Terminal) Input(_, title, placeholder string) (string, error) {
	value := placeholder
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if err := field.Run(); err != nil {
		return "", terminalError(title, err)
	}
	return value, nil
}

// Spin runs fn behind an animated spinner so slow steps show progress.
func Spin(title string, fn func()) error {
	return spinner.New().Title(title).Action(fn).Run()
}

func huhOptions(options []Option) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	return opts
}

func terminalError(title string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return &Error{Prompt: title, Message: "prompt failed", Cause: err}
}
