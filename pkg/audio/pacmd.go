package audio

import (
	"context"
	"fmt"

	"github.com/btheadset/btheadset/internal/log"
	"github.com/btheadset/btheadset/pkg/bluetooth"
	"github.com/btheadset/btheadset/pkg/connector"
	"github.com/btheadset/btheadset/pkg/protocol"
)

// DefaultPacmdCommand locates pacmd through the program search path.
var DefaultPacmdCommand = []string{"/usr/bin/env", "pacmd"}

// Pacmd implements Controller. Requests are passed as pacmd arguments, one process per request.
type Pacmd struct {
	runner  connector.Runner
	command []string
	log     log.Logger
}

// NewPacmd returns a Pacmd that starts command through runner. If command is empty,
// DefaultPacmdCommand is used. A nil logger discards messages.
func NewPacmd(runner connector.Runner, command []string, logger log.Logger) *Pacmd {
	if len(command) == 0 {
		command = DefaultPacmdCommand
	}
	if logger == nil {
		logger = log.Discard
	}
	return &Pacmd{runner: runner, command: command, log: logger}
}

func (p *Pacmd) run(ctx context.Context, args ...string) (string, error) {
	command := make([]string, 0, len(p.command)+len(args))
	command = append(command, p.command...)
	command = append(command, args...)
	out, err := p.runner.Run(ctx, command, "")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ListCards returns the raw card listing.
func (p *Pacmd) ListCards(ctx context.Context) (string, error) {
	return p.run(ctx, "list-cards")
}

// ListSinks returns the raw sink listing.
func (p *Pacmd) ListSinks(ctx context.Context) (string, error) {
	return p.run(ctx, "list-sinks")
}

func (p *Pacmd) CardIndex(ctx context.Context, addr bluetooth.Address) (CardIndex, error) {
	name := CardName(addr)
	p.log.Debug("Getting card index of \"%s\"", name)
	dump, err := p.ListCards(ctx)
	if err != nil {
		return "", err
	}
	index, err := FindIndex(dump, name)
	if err != nil {
		return "", err
	}
	p.log.Debug("Card \"%s\" has index %s", name, index)
	return CardIndex(index), nil
}

func (p *Pacmd) SetCardProfile(ctx context.Context, card CardIndex, profile string) error {
	if _, err := p.run(ctx, "set-card-profile", string(card), ProfileOff); err != nil {
		return err
	}
	if _, err := p.run(ctx, "set-card-profile", string(card), profile); err != nil {
		return &protocol.PartialError{Details: fmt.Errorf("card %s left with profile '%s': %w", card, ProfileOff, err)}
	}
	return nil
}

func (p *Pacmd) SinkIndex(ctx context.Context, addr bluetooth.Address, profile string) (SinkIndex, error) {
	name := SinkName(addr, profile)
	p.log.Debug("Getting sink index of \"%s\"", name)
	dump, err := p.ListSinks(ctx)
	if err != nil {
		return "", err
	}
	index, err := FindIndex(dump, name)
	if err != nil {
		return "", err
	}
	p.log.Debug("Sink \"%s\" has index %s", name, index)
	return SinkIndex(index), nil
}

func (p *Pacmd) SetDefaultSink(ctx context.Context, sink SinkIndex) error {
	_, err := p.run(ctx, "set-default-sink", string(sink))
	return err
}
