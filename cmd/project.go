package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pdoc"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct{}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "create a project, or show it if it already exists" }
func (*projectCmd) Usage() string {
	return `pdoc project

  Asks for a project name with completion over the existing projects,
  then creates the project interactively if it is new. A new project
  asks for its client too, creating that as well when needed.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	name, err := pdoc.PromptProjectName(store)
	if err != nil {
		return fail(err)
	}
	project, err := store.GetOrCreateProject(name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Saved project %q for client %q\n", project.Name, project.ClientRef)
	return subcommands.ExitSuccess
}
