package domain

import "io"

// Command is an external process run on behalf of the user.
type Command struct {
	// Args holds the executable name followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overrides variables of the inherited environment.
	Env    map[string]string
	Stdout io.Writer
	Stderr io.Writer
}
