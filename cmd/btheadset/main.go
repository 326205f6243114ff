package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/btheadset/btheadset/internal/log"
	"github.com/btheadset/btheadset/pkg/audio"
	"github.com/btheadset/btheadset/pkg/bluetooth"
	"github.com/btheadset/btheadset/pkg/cli"
	"github.com/btheadset/btheadset/pkg/connector/exec"
	"github.com/btheadset/btheadset/pkg/headset"
	"github.com/btheadset/btheadset/pkg/protocol"
)

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

const usage = `
Connects a Bluetooth headset and uses it as the default audio output sink.

 * The headset must already be paired and trusted.
 * bluetoothctl and pacmd must be on the PATH (or configured with -bluetoothctl and -pacmd).`

func Usage() {
	fmt.Printf("Usage: %s [OPTION...]\n", os.Args[0])
	fmt.Println(usage)
	fmt.Println("")
	fmt.Printf("Available OPTIONs:\n")
	flag.PrintDefaults()
}

// newOrchestrator wires the controllers selected by config.
func newOrchestrator(config *cli.Config, logger log.Logger) (*headset.Orchestrator, error) {
	ctlCommand, err := config.BluetoothctlArgs()
	if err != nil {
		return nil, err
	}
	pacmdCommand, err := config.PacmdArgs()
	if err != nil {
		return nil, err
	}

	runner := exec.NewRunner(logger)
	o := headset.New(bluetooth.NewCtl(runner, ctlCommand), audio.NewPacmd(runner, pacmdCommand, logger), logger)
	if config.PollInterval > 0 {
		o.Yield = headset.Sleep(config.PollInterval)
	}
	return o, nil
}

func connect(ctx context.Context, o *headset.Orchestrator, req headset.Request) int {
	result, err := o.Run(ctx, req)
	if err != nil {
		writeErr("Failed to connect headset: %s", err)
		if protocol.MayHaveSucceeded(err) {
			writeErr("The headset or its audio card may have been left in an intermediate state.")
		}
		return 1
	}
	log.Info("Headset %s is the default output (card %s, sink %s)", result.Address, result.Card, result.Sink)
	return 0
}

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	config := cli.NewConfig()
	flag.Usage = Usage
	config.RegisterCommandLineFlags()
	flag.Parse()
	if flag.NArg() > 0 {
		writeErr("Unexpected arguments: %v", flag.Args())
		return
	}
	if err := config.ReadFromEnvironment(); err != nil {
		writeErr("Invalid environment: %s", err)
		return
	}
	if err := config.LoadConfigFile(); err != nil {
		writeErr("Error: %s", err)
		return
	}
	config.ApplyDefaults()

	if err := log.Init(config.LogConfig()); err != nil {
		writeErr("Failed to configure logging: %s", err)
		return
	}
	defer log.Close()

	if config.Address == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := config.PromptAddress(os.Stdin, os.Stderr); err != nil {
			writeErr("Error reading address: %s", err)
			return
		}
	}
	req, err := config.Request()
	if err != nil {
		writeErr("Missing required flag: %s (use -b or $%s)", err, cli.EnvAddress)
		return
	}

	o, err := newOrchestrator(config, log.Default())
	if err != nil {
		writeErr("Error: %s", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	status = connect(ctx, o, req)
}
