/*
Package bluetooth connects Bluetooth devices through the bluetoothctl command-line utility.

The [Controller] interface exposes semantic results (connected or not, device available or not).
The bluetoothctl text that those results are derived from never leaves this package, so a
structured backend can replace [Ctl] without changes to callers.

# Examples

	ctl := bluetooth.NewCtl(exec.NewRunner(log.Default()), bluetooth.DefaultCtlCommand)
	addr, err := bluetooth.ParseAddress("aa:bb:cc:dd:ee:ff") // addr == "AA:BB:CC:DD:EE:FF"
	if err != nil {
		panic(err)
	}
	if err := ctl.Connect(ctx, addr); err != nil {
		panic(err)
	}
	connected, err := ctl.Connected(ctx, addr)
*/
package bluetooth

import "context"

// Controller issues requests to the host Bluetooth stack.
type Controller interface {
	// Connect asks the stack to connect to addr. It returns as soon as the request has been
	// issued; the connection may not be established yet. Connect returns an error matching
	// protocol.ErrDeviceUnavailable if the device is unknown to the stack or out of reach.
	Connect(ctx context.Context, addr Address) error

	// Connected reports whether the stack currently lists addr as connected.
	Connected(ctx context.Context, addr Address) (bool, error)
}
