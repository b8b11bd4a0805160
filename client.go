package pdoc

import (
	"fmt"
	"slices"
)

// Client is a billable customer. The name doubles as unique key and
// display name.
type Client struct {
	Name    Id             `yaml:"name"`
	Address MailingAddress `yaml:"address"`
	Contact ContactInfo    `yaml:"contact"`
}

// PromptClientName asks for a client name, with prefix completion over
// the clients already in the store.
func PromptClientName(s *Store) (Id, error) {
	ids, err := s.ListClients()
	if err != nil {
		return "", err
	}
	candidates := make([]string, len(ids))
	for i, id := range ids {
		candidates[i] = id.String()
	}
	name, err := askName("Client Name:", candidates)
	if err != nil {
		return "", fmt.Errorf("reading client name from user input: %w", err)
	}
	return name, nil
}

// CreateClient runs the interactive creation workflow seeded with a
// name, ending with the review step.
func CreateClient(name Id) (Client, error) {
	PrintHeader(fmt.Sprintf("Create client %s", name))

	fmt.Println("Mailing address:")
	address, err := promptMailingAddress()
	if err != nil {
		return Client{}, err
	}

	fmt.Println("Contact info:")
	contact, err := promptContactInfo()
	if err != nil {
		return Client{}, err
	}

	client := Client{Name: name, Address: address, Contact: contact}
	client, err = reviewYAML(client)
	if err != nil {
		return Client{}, fmt.Errorf("editing client yaml: %w", err)
	}
	return client, nil
}

// GetOrCreateClient returns the client with the given name if it
// exists, otherwise runs the creation workflow and persists the result.
func (s *Store) GetOrCreateClient(name Id) (Client, error) {
	ids, err := s.ListClients()
	if err != nil {
		return Client{}, err
	}
	if slices.Contains(ids, name) {
		return s.LoadClient(name)
	}
	client, err := CreateClient(name)
	if err != nil {
		return Client{}, err
	}
	if err := s.SaveClient(client); err != nil {
		return Client{}, err
	}
	return client, nil
}
