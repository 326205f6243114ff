package connector

import (
	"context"
	"strings"
)

// MaxErrorOutputLength caps how much of a controller's stderr is kept in error messages.
const MaxErrorOutputLength = 512

// Runner executes one-shot controller processes.
//
// Each call starts a new process, writes request to its standard input, closes it, and waits for
// the process to exit. There is no persistent session between calls.
type Runner interface {
	// Run executes command (program followed by its arguments) and returns everything the process
	// wrote to standard output.
	//
	// A launch failure or a non-zero exit status results in an error matching
	// protocol.ErrExternalProcess. Whatever output was produced before the failure is still
	// returned.
	Run(ctx context.Context, command []string, request string) ([]byte, error)
}

// CommandLine renders command for log and error messages.
func CommandLine(command []string) string {
	return strings.Join(command, " ")
}
