package domain

// Command describes a single external process invocation.
type Command struct {
	// Argv holds the program name followed by its arguments.
	Argv []string

	// Dir is the working directory for the process. Empty means the current
	// process's working directory.
	Dir string
}
