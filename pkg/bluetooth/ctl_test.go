package bluetooth_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/btheadset/btheadset/mocks"
	"github.com/btheadset/btheadset/pkg/bluetooth"
	"github.com/btheadset/btheadset/pkg/protocol"
)

var _ = Describe("Ctl", func() {
	var (
		ctrl   *gomock.Controller
		runner *mocks.Runner
		ctl    *bluetooth.Ctl
		ctx    context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = mocks.NewRunner(ctrl)
		ctl = bluetooth.NewCtl(runner, nil)
		ctx = context.Background()
		DeferCleanup(func() {
			ctrl.Finish()
		})
	})

	Describe("Connect", func() {
		It("sends a connect request through env", func() {
			runner.EXPECT().Run(gomock.Any(), []string{"/usr/bin/env", "bluetoothctl"}, "connect 11:22:33:44:55:66").
				Return([]byte("Attempting to connect to 11:22:33:44:55:66"), nil)
			Expect(ctl.Connect(ctx, "11:22:33:44:55:66")).To(Succeed())
		})

		It("reports unavailable devices", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), "connect AA:BB:CC:DD:EE:FF").
				Return([]byte("Device AA:BB:CC:DD:EE:FF not available\n"), nil)
			err := ctl.Connect(ctx, "AA:BB:CC:DD:EE:FF")
			Expect(errors.Is(err, protocol.ErrDeviceUnavailable)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("AA:BB:CC:DD:EE:FF"))
		})

		It("ignores unavailability of other devices", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]byte("Device 11:22:33:44:55:66 not available"), nil)
			Expect(ctl.Connect(ctx, "AA:BB:CC:DD:EE:FF")).To(Succeed())
		})

		It("passes process failures through", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, protocol.ErrExternalProcess)
			Expect(ctl.Connect(ctx, "AA:BB:CC:DD:EE:FF")).To(MatchError(protocol.ErrExternalProcess))
		})

		It("uses a custom command", func() {
			ctl = bluetooth.NewCtl(runner, []string{"bluetoothctl", "--timeout", "3"})
			runner.EXPECT().Run(gomock.Any(), []string{"bluetoothctl", "--timeout", "3"}, "connect AA:BB:CC:DD:EE:FF").Return(nil, nil)
			Expect(ctl.Connect(ctx, "AA:BB:CC:DD:EE:FF")).To(Succeed())
		})
	})

	Describe("Connected", func() {
		It("detects the connected marker", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), "info 11:22:33:44:55:66").
				Return([]byte("Device 11:22:33:44:55:66 (public)\n\tName: Headset\n\tConnected: yes\n"), nil)
			Expect(ctl.Connected(ctx, "11:22:33:44:55:66")).To(BeTrue())
		})

		It("reports disconnected devices", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), "info 11:22:33:44:55:66").
				Return([]byte("\tConnected: no\n"), nil)
			Expect(ctl.Connected(ctx, "11:22:33:44:55:66")).To(BeFalse())
		})

		It("passes process failures through", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, protocol.ErrExternalProcess)
			connected, err := ctl.Connected(ctx, "11:22:33:44:55:66")
			Expect(err).To(MatchError(protocol.ErrExternalProcess))
			Expect(connected).To(BeFalse())
		})
	})
})
