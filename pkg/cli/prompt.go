package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptAddress asks for the headset address on w and reads it from r. It keeps asking until a
// valid address is entered or r is exhausted.
func (c *Config) PromptAddress(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for fmt.Fprintf(w, "Bluetooth address: "); scanner.Scan(); fmt.Fprintf(w, "Bluetooth address: ") {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.Address.Set(line); err != nil {
			fmt.Fprintf(w, "Expected six hex pairs separated by colons, got '%s'\n", line)
			continue
		}
		return nil
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return ErrNoAddress
}
