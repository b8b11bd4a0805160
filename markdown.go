package pdoc

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// PrintMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is unavailable.
func PrintMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
