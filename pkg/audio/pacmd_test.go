package audio_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/btheadset/btheadset/mocks"
	"github.com/btheadset/btheadset/pkg/audio"
	"github.com/btheadset/btheadset/pkg/protocol"
)

var _ = Describe("Pacmd", func() {
	var (
		ctrl   *gomock.Controller
		runner *mocks.Runner
		pacmd  *audio.Pacmd
		ctx    context.Context
	)

	pacmdArgs := func(args ...string) []string {
		return append([]string{"/usr/bin/env", "pacmd"}, args...)
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = mocks.NewRunner(ctrl)
		pacmd = audio.NewPacmd(runner, nil, nil)
		ctx = context.Background()
		DeferCleanup(func() {
			ctrl.Finish()
		})
	})

	Describe("CardIndex", func() {
		It("finds the headset card", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("list-cards"), "").
				Return([]byte("index: 1\nname: <bluez_card.11_22_33_44_55_66>"), nil)
			Expect(pacmd.CardIndex(ctx, "11:22:33:44:55:66")).To(Equal(audio.CardIndex("1")))
		})

		It("fails when the card is missing", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("list-cards"), "").Return([]byte(""), nil)
			_, err := pacmd.CardIndex(ctx, "AA:BB:CC:DD:EE:FF")
			Expect(errors.Is(err, protocol.ErrEntityNotFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("bluez_card.AA_BB_CC_DD_EE_FF"))
		})

		It("passes process failures through", func() {
			runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, protocol.ErrExternalProcess)
			_, err := pacmd.CardIndex(ctx, "AA:BB:CC:DD:EE:FF")
			Expect(err).To(MatchError(protocol.ErrExternalProcess))
		})
	})

	Describe("SinkIndex", func() {
		It("finds the sink for the requested profile", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("list-sinks"), "").
				Return([]byte("index: 1\nname: <bluez_sink.11_22_33_44_55_66.a2dp_sink>"), nil)
			Expect(pacmd.SinkIndex(ctx, "11:22:33:44:55:66", "a2dp_sink")).To(Equal(audio.SinkIndex("1")))
		})

		It("does not match a sink for another profile", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("list-sinks"), "").
				Return([]byte("index: 1\nname: <bluez_sink.11_22_33_44_55_66.headset_head_unit>"), nil)
			_, err := pacmd.SinkIndex(ctx, "11:22:33:44:55:66", "a2dp_sink")
			Expect(errors.Is(err, protocol.ErrEntityNotFound)).To(BeTrue())
		})
	})

	Describe("SetCardProfile", func() {
		It("switches the card off before applying the profile", func() {
			gomock.InOrder(
				runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-card-profile", "3", "off"), "").Return(nil, nil),
				runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-card-profile", "3", "a2dp_sink"), "").Return(nil, nil),
			)
			Expect(pacmd.SetCardProfile(ctx, "3", "a2dp_sink")).To(Succeed())
		})

		It("stops when the card cannot be switched off", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-card-profile", "3", "off"), "").Return(nil, protocol.ErrExternalProcess)
			err := pacmd.SetCardProfile(ctx, "3", "a2dp_sink")
			Expect(err).To(MatchError(protocol.ErrExternalProcess))
			Expect(protocol.MayHaveSucceeded(err)).To(BeFalse())
		})

		It("leaves the card off when the profile cannot be applied", func() {
			gomock.InOrder(
				runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-card-profile", "3", "off"), "").Return(nil, nil),
				runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-card-profile", "3", "bogus"), "").Return(nil, protocol.ErrExternalProcess),
			)
			err := pacmd.SetCardProfile(ctx, "3", "bogus")
			Expect(errors.Is(err, protocol.ErrExternalProcess)).To(BeTrue())
			Expect(protocol.MayHaveSucceeded(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("card 3 left with profile 'off'"))
		})
	})

	Describe("SetDefaultSink", func() {
		It("sets the default sink", func() {
			runner.EXPECT().Run(gomock.Any(), pacmdArgs("set-default-sink", "5"), "").Return(nil, nil)
			Expect(pacmd.SetDefaultSink(ctx, "5")).To(Succeed())
		})

		It("uses a custom command", func() {
			pacmd = audio.NewPacmd(runner, []string{"pacmd-wrapper"}, nil)
			runner.EXPECT().Run(gomock.Any(), []string{"pacmd-wrapper", "set-default-sink", "5"}, "").Return(nil, nil)
			Expect(pacmd.SetDefaultSink(ctx, "5")).To(Succeed())
		})
	})
})
