package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/btheadset/btheadset/internal/log"
)

/*
fileConfig is the layout of the YAML configuration file:

	bluetooth_address: "AA:BB:CC:DD:EE:FF"
	connect_timeout: 10s
	card_profile: a2dp_sink
	verbose: false
	log_file: /var/log/btheadset.log
	poll_interval: 100ms
	bluetoothctl: /usr/bin/env bluetoothctl
	pacmd: /usr/bin/env pacmd

Every key is optional.
*/
type fileConfig struct {
	Address        string `yaml:"bluetooth_address"`
	ConnectTimeout string `yaml:"connect_timeout"`
	CardProfile    string `yaml:"card_profile"`
	Verbose        bool   `yaml:"verbose"`
	LogFile        string `yaml:"log_file"`
	PollInterval   string `yaml:"poll_interval"`
	Bluetoothctl   string `yaml:"bluetoothctl"`
	Pacmd          string `yaml:"pacmd"`
}

// LoadConfigFile fills in fields of c that are still unset from c.ConfigFile. It does nothing if
// no configuration file is configured.
func (c *Config) LoadConfigFile() error {
	if c.ConfigFile == "" {
		return nil
	}
	log.Debug("Loading configuration from %s...", c.ConfigFile)
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return c.mergeYAML(data)
}

func (c *Config) mergeYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.UnmarshalStrict(data, &fc); err != nil {
		return fmt.Errorf("failed to parse configuration %s: %w", c.ConfigFile, err)
	}

	if c.Address == "" && fc.Address != "" {
		if err := c.Address.Set(fc.Address); err != nil {
			return fmt.Errorf("bluetooth_address: %w", err)
		}
	}
	if !c.connectTimeoutSet && fc.ConnectTimeout != "" {
		if err := c.setConnectTimeout(fc.ConnectTimeout); err != nil {
			return fmt.Errorf("connect_timeout: %w", err)
		}
	}
	if c.CardProfile == "" {
		c.CardProfile = fc.CardProfile
	}
	if !c.Verbose {
		c.Verbose = fc.Verbose
	}
	if c.LogFile == "" {
		c.LogFile = fc.LogFile
	}
	if !c.pollIntervalSet && fc.PollInterval != "" {
		if err := c.setPollInterval(fc.PollInterval); err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
	}
	if c.BluetoothctlCommand == "" {
		c.BluetoothctlCommand = fc.Bluetoothctl
	}
	if c.PacmdCommand == "" {
		c.PacmdCommand = fc.Pacmd
	}
	return nil
}
