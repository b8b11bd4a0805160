package pdoc

import (
	"fmt"
	"slices"
)

// Project is a body of work billed to one client. The client is
// referenced by name and only resolved when a document is assembled.
type Project struct {
	Name        Id     `yaml:"name"`
	Description string `yaml:"description"`
	ClientRef   Id     `yaml:"client_ref"`
}

// PromptProjectName asks for a project name, with prefix completion
// over the projects already in the store.
func PromptProjectName(s *Store) (Id, error) {
	ids, err := s.ListProjects()
	if err != nil {
		return "", err
	}
	candidates := make([]string, len(ids))
	for i, id := range ids {
		candidates[i] = id.String()
	}
	name, err := askName("Project Name:", candidates)
	if err != nil {
		return "", fmt.Errorf("reading project name from user input: %w", err)
	}
	return name, nil
}

// CreateProject runs the interactive creation workflow seeded with a
// name, including the nested get-or-create of its client.
func CreateProject(s *Store, name Id) (Project, error) {
	PrintHeader(fmt.Sprintf("Create project %s", name))

	description, err := askText("Description:", "Website redesign")
	if err != nil {
		return Project{}, fmt.Errorf("reading project description from user input: %w", err)
	}

	clientName, err := PromptClientName(s)
	if err != nil {
		return Project{}, err
	}
	client, err := s.GetOrCreateClient(clientName)
	if err != nil {
		return Project{}, fmt.Errorf("getting or creating client: %w", err)
	}

	project := Project{Name: name, Description: description, ClientRef: client.Name}
	project, err = reviewYAML(project)
	if err != nil {
		return Project{}, fmt.Errorf("editing project yaml: %w", err)
	}
	return project, nil
}

// GetOrCreateProject returns the project with the given name if it
// exists, otherwise runs the creation workflow and persists the result.
func (s *Store) GetOrCreateProject(name Id) (Project, error) {
	ids, err := s.ListProjects()
	if err != nil {
		return Project{}, err
	}
	if slices.Contains(ids, name) {
		return s.LoadProject(name)
	}
	project, err := CreateProject(s, name)
	if err != nil {
		return Project{}, err
	}
	if err := s.SaveProject(project); err != nil {
		return Project{}, err
	}
	return project, nil
}
