package bluetooth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/btheadset/btheadset/pkg/protocol"
)

var addressRE = regexp.MustCompile(`(?i)^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)

// Address is a validated Bluetooth device address in canonical (uppercase) form, e.g.
// "AA:BB:CC:DD:EE:FF". The zero value is not a valid address.
type Address string

// ParseAddress validates s and returns its canonical form. Lowercase hex digits are accepted.
func ParseAddress(s string) (Address, error) {
	if !addressRE.MatchString(s) {
		return "", fmt.Errorf("%w: '%s'", protocol.ErrInvalidAddress, s)
	}
	return Address(strings.ToUpper(s)), nil
}

// AddressFromValue validates a value of unknown type. Only strings, Addresses and fmt.Stringers
// can hold an address; anything else is rejected with protocol.ErrInvalidAddress.
func AddressFromValue(v interface{}) (Address, error) {
	switch value := v.(type) {
	case Address:
		return ParseAddress(string(value))
	case string:
		return ParseAddress(value)
	case fmt.Stringer:
		return ParseAddress(value.String())
	default:
		return "", fmt.Errorf("%w: value of type %T", protocol.ErrInvalidAddress, v)
	}
}

func (a Address) String() string {
	return string(a)
}

// PulseName returns the address in the form used by audio-server object names
// (colons replaced with underscores).
func (a Address) PulseName() string {
	return strings.ReplaceAll(string(a), ":", "_")
}

// Set updates an Address from a command-line argument.
func (a *Address) Set(value string) error {
	addr, err := ParseAddress(value)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
