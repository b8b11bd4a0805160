package pdoc

import "fmt"

// MailingAddress is a free-form postal address. Optional lines are
// absent rather than empty in the stored form.
type MailingAddress struct {
	Addr1 string `yaml:"addr1"`
	Addr2 string `yaml:"addr2,omitempty"`
	Addr3 string `yaml:"addr3,omitempty"`
	City  string `yaml:"city"`
	State string `yaml:"state"`
	Zip   string `yaml:"zip"`
}

// promptMailingAddress runs the address sub-workflow. The third
// address line is only offered when a second one was given.
func promptMailingAddress() (MailingAddress, error) {
	var addr MailingAddress
	var err error

	if addr.Addr1, err = askText("Address Line 1:", "123 Happy Lane"); err != nil {
		return addr, fmt.Errorf("reading address line 1 from user input: %w", err)
	}
	if addr.Addr2, err = askOptionalText("Address Line 2 (optional):", "Apt. 7"); err != nil {
		return addr, fmt.Errorf("reading address line 2 from user input: %w", err)
	}
	if addr.Addr2 != "" {
		if addr.Addr3, err = askOptionalText("Address Line 3 (optional):", "Closet under the stairs"); err != nil {
			return addr, fmt.Errorf("reading address line 3 from user input: %w", err)
		}
	}
	if addr.City, err = askText("City:", "Springfield"); err != nil {
		return addr, fmt.Errorf("reading city from user input: %w", err)
	}
	if addr.State, err = askOptionalText("State:", "Ohio"); err != nil {
		return addr, fmt.Errorf("reading state from user input: %w", err)
	}
	if addr.Zip, err = askText("Zipcode:", "12345"); err != nil {
		return addr, fmt.Errorf("reading zipcode from user input: %w", err)
	}
	return addr, nil
}
