package domain

import "strings"

// Command is an external program invocation.
type Command struct {
	// Args is the argv; Args[0] is the program.
	Args []string
	// Dir is the working directory.
	Dir string
}

// NewCommand expands a template against the project directory.
func NewCommand(template []string, project string) Command {
	args := make([]string, len(template))
	for i, a := range template {
		args[i] = strings.ReplaceAll(a, ProjectToken, project)
	}
	return Command{Args: args, Dir: project}
}

// String renders the command for logs.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
