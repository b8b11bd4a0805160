package pdoc

import "fmt"

// ContactInfo holds how to reach a person or company. Both fields are
// required; no format validation is applied.
type ContactInfo struct {
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// promptContactInfo runs the contact sub-workflow.
func promptContactInfo() (ContactInfo, error) {
	var contact ContactInfo
	var err error

	if contact.Email, err = askText("Email:", "test@example.com"); err != nil {
		return contact, fmt.Errorf("reading email from user input: %w", err)
	}
	if contact.Phone, err = askText("Phone:", "(412) 555-1827"); err != nil {
		return contact, fmt.Errorf("reading phone number from user input: %w", err)
	}
	return contact, nil
}
