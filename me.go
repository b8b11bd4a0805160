package pdoc

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// PaymentMethod is one way the operator accepts payment. DisplayText
// defaults to Name; a URL renders as a hyperlink on documents.
type PaymentMethod struct {
	Name        string `yaml:"name"`
	DisplayText string `yaml:"display_text,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// Display returns the text shown on documents for this method.
func (p PaymentMethod) Display() string {
	if p.DisplayText != "" {
		return p.DisplayText
	}
	return p.Name
}

// Me is the operator's own profile. Exactly one instance exists per
// data root, stored under a fixed filename.
type Me struct {
	Name    string          `yaml:"name"`
	Address MailingAddress  `yaml:"address"`
	Contact ContactInfo     `yaml:"contact"`
	Payment []PaymentMethod `yaml:"payment"`
}

// NameNoSpaces returns the operator's name with whitespace removed,
// used in output filenames.
func (m Me) NameNoSpaces() string {
	return strings.Join(strings.Fields(m.Name), "")
}

// promptPaymentMethods runs the repeatable payment-method loop,
// terminated by an empty name.
func promptPaymentMethods() ([]PaymentMethod, error) {
	var methods []PaymentMethod
	for {
		name, err := askOptionalText("Payment method name (empty to finish):", "PayPal")
		if err != nil {
			return nil, fmt.Errorf("reading payment method name from user input: %w", err)
		}
		if name == "" {
			return methods, nil
		}
		displayText, err := askOptionalText("Display text (optional):", "paypal.me/handle")
		if err != nil {
			return nil, fmt.Errorf("reading payment method display text from user input: %w", err)
		}
		url, err := askOptionalText("URL (optional):", "https://paypal.me/handle")
		if err != nil {
			return nil, fmt.Errorf("reading payment method url from user input: %w", err)
		}
		methods = append(methods, PaymentMethod{Name: name, DisplayText: displayText, URL: url})
	}
}

// CreateMe runs the interactive profile creation workflow.
func CreateMe() (Me, error) {
	PrintHeader("Personal info")

	name, err := askText("Name:", "Jane Doe")
	if err != nil {
		return Me{}, fmt.Errorf("reading name from user input: %w", err)
	}

	fmt.Println("Mailing address:")
	address, err := promptMailingAddress()
	if err != nil {
		return Me{}, err
	}

	fmt.Println("Contact info:")
	contact, err := promptContactInfo()
	if err != nil {
		return Me{}, err
	}

	payment, err := promptPaymentMethods()
	if err != nil {
		return Me{}, err
	}

	me := Me{Name: name, Address: address, Contact: contact, Payment: payment}
	me, err = reviewYAML(me)
	if err != nil {
		return Me{}, fmt.Errorf("editing personal info yaml: %w", err)
	}
	return me, nil
}

// EditMe opens the existing profile for review and editing, creating
// it from scratch when absent, and saves the result.
func (s *Store) EditMe() (Me, error) {
	me, err := s.LoadMe()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		me, err = CreateMe()
	case err == nil:
		me, err = reviewYAML(me)
	}
	if err != nil {
		return Me{}, err
	}
	if err := s.SaveMe(me); err != nil {
		return Me{}, err
	}
	return me, nil
}

// GetOrCreateMe loads the singleton profile, running the creation
// workflow first if the file is absent.
func (s *Store) GetOrCreateMe() (Me, error) {
	me, err := s.LoadMe()
	if err == nil {
		return me, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Me{}, err
	}
	me, err = CreateMe()
	if err != nil {
		return Me{}, err
	}
	if err := s.SaveMe(me); err != nil {
		return Me{}, err
	}
	return me, nil
}
