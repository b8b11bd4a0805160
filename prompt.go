package pdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/etnz/pdoc/date"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// PrintTitle prints a boxed banner, used once at startup.
func PrintTitle(text string) {
	fmt.Println(titleStyle.Render(text))
}

// PrintHeader prints a section header between prompt sequences.
func PrintHeader(text string) {
	fmt.Println()
	fmt.Println(headerStyle.Render(text))
}

// required rejects blank input. Prompt fields using it re-prompt in
// place until the user types something.
func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// runField runs a single prompt field as its own one-step form, so
// that workflows read as a linear sequence of prompts.
func runField(f huh.Field) error {
	return huh.NewForm(huh.NewGroup(f)).Run()
}

// askText prompts for a required free-text value.
func askText(title, placeholder string) (string, error) {
	var v string
	err := runField(huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(required).
		Value(&v))
	return v, err
}

// askOptionalText prompts for a free-text value, mapping blank input
// to the empty string.
func askOptionalText(title, placeholder string) (string, error) {
	var v string
	err := runField(huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&v))
	return v, err
}

// askName prompts for an entity name, offering prefix completion over
// the names already present in the store.
func askName(title string, candidates []string) (Id, error) {
	var v string
	in := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			if err := required(s); err != nil {
				return err
			}
			_, err := NewId(s)
			return err
		}).
		Value(&v)
	in.SuggestionsFunc(func() []string { return Suggestions(candidates, v) }, &v)
	if err := runField(in); err != nil {
		return "", err
	}
	return NewId(v)
}

// askDate prompts for a date in the standard "YYYY-MM-DD" form,
// pre-filled with a default.
func askDate(title string, def date.Date) (date.Date, error) {
	v := def.String()
	err := runField(huh.NewInput().
		Title(title).
		Placeholder(date.Format).
		Validate(func(s string) error {
			_, err := date.Parse(s)
			return err
		}).
		Value(&v))
	if err != nil {
		return date.Date{}, err
	}
	return date.Parse(v)
}

// askUint prompts for a non-negative integer, pre-filled with a default.
func askUint(title string, def uint32) (uint32, error) {
	v := strconv.FormatUint(uint64(def), 10)
	err := runField(huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			_, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
			return err
		}).
		Value(&v))
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	return uint32(n), err
}

// askSelect prompts for a choice among labeled options.
func askSelect[T comparable](title string, options []huh.Option[T]) (T, error) {
	var v T
	err := runField(huh.NewSelect[T]().
		Title(title).
		Options(options...).
		Value(&v))
	return v, err
}

// askConfirm prompts for a yes/no answer.
func askConfirm(title string, def bool) (bool, error) {
	v := def
	err := runField(huh.NewConfirm().
		Title(title).
		Value(&v))
	return v, err
}
