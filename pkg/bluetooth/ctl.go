package bluetooth

import (
	"context"
	"fmt"
	"strings"

	"github.com/btheadset/btheadset/pkg/connector"
	"github.com/btheadset/btheadset/pkg/protocol"
)

// DefaultCtlCommand locates bluetoothctl through the program search path.
var DefaultCtlCommand = []string{"/usr/bin/env", "bluetoothctl"}

const connectedMarker = "Connected: yes"

// Ctl implements Controller by feeding one request line to a fresh bluetoothctl process per
// call.
type Ctl struct {
	runner  connector.Runner
	command []string
}

// NewCtl returns a Ctl that starts command through runner. If command is empty,
// DefaultCtlCommand is used.
func NewCtl(runner connector.Runner, command []string) *Ctl {
	if len(command) == 0 {
		command = DefaultCtlCommand
	}
	return &Ctl{runner: runner, command: command}
}

func (c *Ctl) request(ctx context.Context, verb string, addr Address) (string, error) {
	out, err := c.runner.Run(ctx, c.command, fmt.Sprintf("%s %s", verb, addr))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *Ctl) Connect(ctx context.Context, addr Address) error {
	out, err := c.request(ctx, "connect", addr)
	if err != nil {
		return err
	}
	// bluetoothctl exits successfully even when the device is unknown, so its output is the only
	// signal available.
	if strings.Contains(out, fmt.Sprintf("Device %s not available", addr)) {
		return fmt.Errorf("%w: %s", protocol.ErrDeviceUnavailable, addr)
	}
	return nil
}

func (c *Ctl) Connected(ctx context.Context, addr Address) (bool, error) {
	out, err := c.request(ctx, "info", addr)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, connectedMarker), nil
}
