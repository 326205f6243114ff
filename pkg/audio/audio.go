// Package audio drives the audio server through the pacmd command-line utility.
//
// Cards and sinks created for Bluetooth devices are found by the names the audio server derives
// from the device address, see [CardName] and [SinkName].
package audio

import (
	"context"
	"fmt"

	"github.com/btheadset/btheadset/pkg/bluetooth"
)

// DefaultProfile is the high-fidelity playback profile offered by most headsets.
const DefaultProfile = "a2dp_sink"

// ProfileOff disables a card.
const ProfileOff = "off"

// CardIndex identifies a card. It is an opaque handle returned by the audio server.
type CardIndex string

// SinkIndex identifies a sink. It is an opaque handle returned by the audio server.
type SinkIndex string

// Controller queries and configures the audio server.
type Controller interface {
	// CardIndex returns the card created for the Bluetooth device at addr, or an error matching
	// protocol.ErrEntityNotFound.
	CardIndex(ctx context.Context, addr bluetooth.Address) (CardIndex, error)

	// SetCardProfile switches card to profile. The card is switched off first. If switching to
	// profile then fails, the card stays off and the returned error satisfies
	// protocol.MayHaveSucceeded.
	SetCardProfile(ctx context.Context, card CardIndex, profile string) error

	// SinkIndex returns the sink that the card for addr exposes under profile, or an error
	// matching protocol.ErrEntityNotFound.
	SinkIndex(ctx context.Context, addr bluetooth.Address, profile string) (SinkIndex, error)

	// SetDefaultSink makes sink the destination for unrouted playback.
	SetDefaultSink(ctx context.Context, sink SinkIndex) error
}

// CardName returns the audio-server name of the card for addr.
func CardName(addr bluetooth.Address) string {
	return "bluez_card." + addr.PulseName()
}

// SinkName returns the audio-server name of the sink for addr under profile.
func SinkName(addr bluetooth.Address, profile string) string {
	return fmt.Sprintf("bluez_sink.%s.%s", addr.PulseName(), profile)
}
