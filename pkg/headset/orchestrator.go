/*
Package headset connects a Bluetooth headset and makes it the default audio output.

An [Orchestrator] walks through the following states, stopping at the first failure:

	validating → connecting → awaiting connection → resolving card → setting profile →
	resolving sink → setting default sink → done

Failed steps are not retried and nothing is rolled back. In particular, if the card profile
cannot be applied after the card was switched off, the card stays off.

# Examples

	runner := exec.NewRunner(log.Default())
	o := headset.New(bluetooth.NewCtl(runner, nil), audio.NewPacmd(runner, nil, log.Default()), log.Default())
	result, err := o.Run(ctx, headset.Request{
		Address:        "aa:bb:cc:dd:ee:ff",
		Profile:        audio.DefaultProfile,
		ConnectTimeout: 5 * time.Second,
	})
*/
package headset

import (
	"context"
	"fmt"
	"time"

	"github.com/btheadset/btheadset/internal/log"
	"github.com/btheadset/btheadset/pkg/audio"
	"github.com/btheadset/btheadset/pkg/bluetooth"
	"github.com/btheadset/btheadset/pkg/protocol"
)

// DefaultConnectTimeout bounds how long the Orchestrator waits for the headset to report a
// connection.
const DefaultConnectTimeout = 5 * time.Second

// Request describes a headset to connect and how to configure it.
type Request struct {
	// Address is validated by the Orchestrator, so it may come straight from user input.
	Address        string
	Profile        string
	ConnectTimeout time.Duration
}

// Result holds the audio-server handles of a connected headset.
type Result struct {
	Address bluetooth.Address
	Card    audio.CardIndex
	Sink    audio.SinkIndex
	Polls   int // Number of connection-state queries issued.
}

// Observer is notified of every state transition. err is only set when to is StateFailed.
type Observer func(from, to State, err error)

// Orchestrator sequences the Bluetooth and audio controllers.
//
// Only Bluetooth and Audio are required. An Orchestrator holds no per-run state, but runs against
// the same device are not synchronized with each other.
type Orchestrator struct {
	Bluetooth bluetooth.Controller
	Audio     audio.Controller
	Log       log.Logger
	Clock     Clock

	// Yield is called between two connection-state queries. The default does nothing, so the
	// controller is queried back to back until the deadline passes.
	Yield func()

	Observer Observer
}

func New(bt bluetooth.Controller, ac audio.Controller, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		Bluetooth: bt,
		Audio:     ac,
		Log:       logger,
	}
}

type run struct {
	*Orchestrator
	log    log.Logger
	clock  Clock
	state  State
	result Result
}

func (o *Orchestrator) newRun() *run {
	r := &run{Orchestrator: o, log: o.Log, clock: o.Clock, state: StateIdle}
	if r.log == nil {
		r.log = log.Discard
	}
	if r.clock == nil {
		r.clock = SystemClock
	}
	return r
}

func (r *run) transition(to State, err error) {
	from := r.state
	r.state = to
	r.log.Debug("State %s -> %s", from, to)
	if r.Observer != nil {
		r.Observer(from, to, err)
	}
}

// enter moves to the next step unless ctx has been cancelled.
func (r *run) enter(ctx context.Context, to State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.transition(to, nil)
	return nil
}

func (r *run) fail(subject string, err error) error {
	stepErr := &protocol.StepError{Step: r.state.String(), Subject: subject, Err: err}
	r.transition(StateFailed, stepErr)
	return stepErr
}

func (r *run) yield() {
	if r.Yield != nil {
		r.Yield()
	}
}

// Run connects the headset described by req and makes it the default sink. The returned error
// wraps a *protocol.StepError naming the failed step.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	r := o.newRun()

	if err := r.enter(ctx, StateValidating); err != nil {
		return nil, r.fail("", err)
	}
	addr, err := validate(req)
	if err != nil {
		return nil, r.fail("", err)
	}
	r.result.Address = addr
	subject := addr.String()

	if err := r.enter(ctx, StateConnecting); err != nil {
		return nil, r.fail(subject, err)
	}
	r.log.Info("Connecting to Bluetooth headset \"%s\"", addr)
	if err := r.Bluetooth.Connect(ctx, addr); err != nil {
		return nil, r.fail(subject, err)
	}

	if err := r.enter(ctx, StateAwaitingConnection); err != nil {
		return nil, r.fail(subject, err)
	}
	if err := r.awaitConnection(ctx, addr, req.ConnectTimeout); err != nil {
		return nil, r.fail(subject, err)
	}
	r.log.Info("Successfully connected to Bluetooth headset \"%s\"", addr)

	if err := r.enter(ctx, StateResolvingCard); err != nil {
		return nil, r.fail(subject, err)
	}
	card, err := r.Audio.CardIndex(ctx, addr)
	if err != nil {
		return nil, r.fail(subject, err)
	}
	r.result.Card = card

	if err := r.enter(ctx, StateSettingProfile); err != nil {
		return nil, r.fail(string(card), err)
	}
	r.log.Info("Setting card profile of %s to \"%s\"", card, req.Profile)
	if err := r.Audio.SetCardProfile(ctx, card, req.Profile); err != nil {
		return nil, r.fail(string(card), err)
	}

	// The sink is looked up under the requested profile. Whether the card actually reports that
	// profile as active is not checked.
	if err := r.enter(ctx, StateResolvingSink); err != nil {
		return nil, r.fail(subject, err)
	}
	sink, err := r.Audio.SinkIndex(ctx, addr, req.Profile)
	if err != nil {
		return nil, r.fail(subject, err)
	}
	r.result.Sink = sink

	if err := r.enter(ctx, StateSettingDefaultSink); err != nil {
		return nil, r.fail(string(sink), err)
	}
	r.log.Info("Setting default output sink to %s", sink)
	if err := r.Audio.SetDefaultSink(ctx, sink); err != nil {
		return nil, r.fail(string(sink), err)
	}

	r.transition(StateDone, nil)
	result := r.result
	return &result, nil
}

func validate(req Request) (bluetooth.Address, error) {
	addr, err := bluetooth.ParseAddress(req.Address)
	if err != nil {
		return "", err
	}
	if req.ConnectTimeout <= 0 {
		return "", fmt.Errorf("%w: connect timeout must be positive, got %s", protocol.ErrInvalidRequest, req.ConnectTimeout)
	}
	if req.Profile == "" {
		return "", fmt.Errorf("%w: empty card profile", protocol.ErrInvalidRequest)
	}
	return addr, nil
}

// awaitConnection queries the connection state until the device reports it is connected or
// timeout has elapsed. The deadline is only checked before each query, so a query that is in
// flight when the deadline passes still completes.
func (r *run) awaitConnection(ctx context.Context, addr bluetooth.Address, timeout time.Duration) error {
	start := r.clock.Now()
	for r.clock.Since(start) < timeout {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.result.Polls++
		connected, err := r.Bluetooth.Connected(ctx, addr)
		if err != nil {
			return err
		}
		if connected {
			return nil
		}
		r.yield()
	}
	r.log.Debug("Gave up on %s after %d queries", addr, r.result.Polls)
	return fmt.Errorf("%w after %s", protocol.ErrConnectTimeout, timeout)
}
