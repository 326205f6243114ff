/*
Package cli gathers btheadset settings from command-line flags, environment variables and an
optional YAML configuration file.

# Examples

	config := cli.NewConfig()
	config.RegisterCommandLineFlags()
	flag.Parse()
	if err := config.ReadFromEnvironment(); err != nil { // Fills in fields missing from the command line
		panic(err)
	}
	if err := config.LoadConfigFile(); err != nil { // Fills in fields still missing
		panic(err)
	}
	config.ApplyDefaults()

A value set on the command line always wins over the environment, which wins over the
configuration file.
*/
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"

	"github.com/btheadset/btheadset/internal/log"
	"github.com/btheadset/btheadset/pkg/audio"
	"github.com/btheadset/btheadset/pkg/bluetooth"
	"github.com/btheadset/btheadset/pkg/headset"
)

// Environment variable names used by [Config.ReadFromEnvironment].
const (
	EnvAddress        = "BTHEADSET_ADDRESS"
	EnvConnectTimeout = "BTHEADSET_CONNECT_TIMEOUT"
	EnvCardProfile    = "BTHEADSET_CARD_PROFILE"
	EnvVerbose        = "BTHEADSET_VERBOSE"
	EnvConfigFile     = "BTHEADSET_CONFIG"
	EnvLogFile        = "BTHEADSET_LOG_FILE"
	EnvPollInterval   = "BTHEADSET_POLL_INTERVAL"
	EnvBluetoothctl   = "BTHEADSET_BLUETOOTHCTL"
	EnvPacmd          = "BTHEADSET_PACMD"
)

var (
	ErrNoAddress      = errors.New("bluetooth address not provided")
	ErrInvalidCommand = errors.New("invalid controller command")
)

// Config holds everything needed to run the orchestrator.
type Config struct {
	Address        bluetooth.Address
	ConnectTimeout time.Duration
	CardProfile    string
	Verbose        bool
	ConfigFile     string
	LogFile        string

	// PollInterval is slept between connection-state queries. Zero queries back to back.
	PollInterval time.Duration

	// Controller command lines, split with shell quoting rules.
	BluetoothctlCommand string
	PacmdCommand        string

	connectTimeoutSet bool
	pollIntervalSet   bool
}

func NewConfig() *Config {
	return &Config{}
}

// RegisterCommandLineFlags adds c's flags to the default flag set.
func (c *Config) RegisterCommandLineFlags() {
	c.RegisterFlags(flag.CommandLine)
}

// RegisterFlags adds c's flags to fs. Flags that are left unset stay unset so that
// [Config.ReadFromEnvironment] and [Config.LoadConfigFile] can fill them in.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	addrHelp := "Bluetooth `address` of the headset. Defaults to $" + EnvAddress + "."
	fs.Var(&c.Address, "b", addrHelp)
	fs.Var(&c.Address, "bluetooth-address", addrHelp)

	timeoutHelp := fmt.Sprintf("Bluetooth connect `timeout`. Defaults to $%s or %s.", EnvConnectTimeout, headset.DefaultConnectTimeout)
	fs.Func("c", timeoutHelp, c.setConnectTimeout)
	fs.Func("connect-timeout", timeoutHelp, c.setConnectTimeout)

	profileHelp := fmt.Sprintf("Headset card `profile`. Defaults to $%s or %s.", EnvCardProfile, audio.DefaultProfile)
	fs.StringVar(&c.CardProfile, "p", "", profileHelp)
	fs.StringVar(&c.CardProfile, "card-profile", "", profileHelp)

	fs.BoolVar(&c.Verbose, "v", false, "Enable verbose mode")
	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose mode")

	fs.StringVar(&c.ConfigFile, "config", "", "YAML configuration `file`. Defaults to $"+EnvConfigFile+".")
	fs.StringVar(&c.LogFile, "log-file", "", "Also write log messages to `file`. Defaults to $"+EnvLogFile+".")
	fs.Func("poll-interval", "Pause `duration` between connection checks. Defaults to $"+EnvPollInterval+" or 0.", c.setPollInterval)
	fs.StringVar(&c.BluetoothctlCommand, "bluetoothctl", "", "Bluetooth controller `command`. Defaults to $"+EnvBluetoothctl+".")
	fs.StringVar(&c.PacmdCommand, "pacmd", "", "Audio controller `command`. Defaults to $"+EnvPacmd+".")
}

// ReadFromEnvironment populates c using environment variables. Values that are already populated
// are not overwritten.
func (c *Config) ReadFromEnvironment() error {
	if c.Address == "" {
		if v := os.Getenv(EnvAddress); v != "" {
			if err := c.Address.Set(v); err != nil {
				return fmt.Errorf("%s: %w", EnvAddress, err)
			}
			log.Debug("Set address to '%s'", c.Address)
		}
	}
	if !c.connectTimeoutSet {
		if v := os.Getenv(EnvConnectTimeout); v != "" {
			if err := c.setConnectTimeout(v); err != nil {
				return fmt.Errorf("%s: %w", EnvConnectTimeout, err)
			}
			log.Debug("Set connect timeout to %s", c.ConnectTimeout)
		}
	}
	if c.CardProfile == "" {
		c.CardProfile = os.Getenv(EnvCardProfile)
	}
	if !c.Verbose {
		if v, ok := os.LookupEnv(EnvVerbose); ok {
			c.Verbose = v != "false" && v != "0"
		}
	}
	if c.ConfigFile == "" {
		c.ConfigFile = os.Getenv(EnvConfigFile)
	}
	if c.LogFile == "" {
		c.LogFile = os.Getenv(EnvLogFile)
	}
	if !c.pollIntervalSet {
		if v := os.Getenv(EnvPollInterval); v != "" {
			if err := c.setPollInterval(v); err != nil {
				return fmt.Errorf("%s: %w", EnvPollInterval, err)
			}
		}
	}
	if c.BluetoothctlCommand == "" {
		c.BluetoothctlCommand = os.Getenv(EnvBluetoothctl)
	}
	if c.PacmdCommand == "" {
		c.PacmdCommand = os.Getenv(EnvPacmd)
	}
	return nil
}

// parseTimeout accepts Go durations ("1m30s") as well as a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func (c *Config) setConnectTimeout(v string) error {
	d, err := parseTimeout(v)
	if err != nil {
		return err
	}
	c.ConnectTimeout = d
	c.connectTimeoutSet = true
	return nil
}

func (c *Config) setPollInterval(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	c.PollInterval = d
	c.pollIntervalSet = true
	return nil
}

// ApplyDefaults fills in fields that are still unset.
func (c *Config) ApplyDefaults() {
	if !c.connectTimeoutSet {
		c.ConnectTimeout = headset.DefaultConnectTimeout
		c.connectTimeoutSet = true
	}
	if c.CardProfile == "" {
		c.CardProfile = audio.DefaultProfile
	}
}

// LogConfig returns the logging settings selected by c.
func (c *Config) LogConfig() log.Config {
	level := log.LevelInfo
	if c.Verbose {
		level = log.LevelDebug
	}
	return log.Config{Level: level, File: c.LogFile}
}

// Request returns the orchestrator request described by c.
func (c *Config) Request() (headset.Request, error) {
	if c.Address == "" {
		return headset.Request{}, ErrNoAddress
	}
	return headset.Request{
		Address:        c.Address.String(),
		Profile:        c.CardProfile,
		ConnectTimeout: c.ConnectTimeout,
	}, nil
}

// BluetoothctlArgs splits c.BluetoothctlCommand. It returns nil if no command is configured.
func (c *Config) BluetoothctlArgs() ([]string, error) {
	return splitCommand(c.BluetoothctlCommand)
}

// PacmdArgs splits c.PacmdCommand. It returns nil if no command is configured.
func (c *Config) PacmdArgs() ([]string, error) {
	return splitCommand(c.PacmdCommand)
}

func splitCommand(command string) ([]string, error) {
	if command == "" {
		return nil, nil
	}
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %s", ErrInvalidCommand, command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidCommand, command)
	}
	return args, nil
}
