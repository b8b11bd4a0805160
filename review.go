package pdoc

import (
	"fmt"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"
)

// editText opens the user's editor pre-filled with text and returns
// the edited result.
func editText(text string) (string, error) {
	tmp, err := os.CreateTemp("", "pdoc-*.yaml")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temporary file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %q: %w", editor, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(edited), nil
}

// reviewYAML shows a record's serialized form, lets the user hand-edit
// it, and re-validates the edited text against the same strict schema.
// The loop is bounded only by user action: it re-opens the editor
// until the text validates or the user declines to continue.
func reviewYAML[T any](record T) (T, error) {
	out, err := yaml.Marshal(record)
	if err != nil {
		return record, fmt.Errorf("serializing yaml: %w", err)
	}
	text := string(out)

	PrintHeader("Final YAML")
	PrintMarkdown("```yaml\n" + text + "```\n")

	for {
		text, err = editText(text)
		if err != nil {
			return record, err
		}

		var edited T
		decodeErr := decodeStrict([]byte(text), &edited)
		if decodeErr == nil {
			return edited, nil
		}
		fmt.Fprintf(os.Stderr, "invalid yaml: %v\n", decodeErr)

		again, err := askConfirm("The edited YAML is invalid. Edit again?", true)
		if err != nil {
			return record, fmt.Errorf("reading confirmation from user input: %w", err)
		}
		if !again {
			return record, fmt.Errorf("edited yaml rejected")
		}
	}
}
