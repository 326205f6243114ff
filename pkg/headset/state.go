package headset

// State is a step of the connection sequence.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateConnecting
	StateAwaitingConnection
	StateResolvingCard
	StateSettingProfile
	StateResolvingSink
	StateSettingDefaultSink
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:               "idle",
	StateValidating:         "validating",
	StateConnecting:         "connecting",
	StateAwaitingConnection: "awaiting connection",
	StateResolvingCard:      "resolving card",
	StateSettingProfile:     "setting profile",
	StateResolvingSink:      "resolving sink",
	StateSettingDefaultSink: "setting default sink",
	StateDone:               "done",
	StateFailed:             "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal returns true for StateDone and StateFailed.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
