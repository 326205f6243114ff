// Package exec implements [connector.Runner] with operating system child processes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/btheadset/btheadset/internal/log"
	"github.com/btheadset/btheadset/pkg/connector"
	"github.com/btheadset/btheadset/pkg/protocol"
)

// ProcessError describes a controller process that could not be started or that exited with a
// failure status. It matches protocol.ErrExternalProcess under [errors.Is].
type ProcessError struct {
	Command  []string
	ExitCode int // -1 if the process never ran to completion.
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: `%s`: %s", protocol.ErrExternalProcess, connector.CommandLine(e.Command), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func (e *ProcessError) Is(target error) bool {
	return target == protocol.ErrExternalProcess
}

func (e *ProcessError) MayHaveSucceeded() bool {
	return false
}

func (e *ProcessError) Temporary() bool {
	return false
}

// Runner starts controllers with os/exec. The zero value is ready to use and logs nothing.
type Runner struct {
	Log log.Logger
}

// NewRunner returns a Runner that writes controller IO to logger at debug level.
func NewRunner(logger log.Logger) *Runner {
	return &Runner{Log: logger}
}

func (r *Runner) logger() log.Logger {
	if r.Log == nil {
		return log.Discard
	}
	return r.Log
}

func (r *Runner) Run(ctx context.Context, command []string, request string) ([]byte, error) {
	if len(command) == 0 {
		return nil, &ProcessError{ExitCode: -1, Err: errors.New("empty command")}
	}
	if err := ctx.Err(); err != nil {
		return nil, &ProcessError{Command: command, ExitCode: -1, Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := osexec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = strings.NewReader(request)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger().Debug("exec: %s <<< %q", connector.CommandLine(command), request)
	err := cmd.Run()
	r.logger().Debug("exec: %s >>> %q", connector.CommandLine(command), stdout.String())
	if err == nil {
		return stdout.Bytes(), nil
	}

	procErr := &ProcessError{
		Command:  command,
		ExitCode: -1,
		Stderr:   truncate(strings.TrimSpace(stderr.String()), connector.MaxErrorOutputLength),
		Err:      err,
	}
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		procErr.ExitCode = exitErr.ExitCode()
	}
	return stdout.Bytes(), procErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
