package primitives

// SignalKind identifies which lifecycle signal a Source sends to its Sink.
type SignalKind int

const (
	// StartSignal is always the first signal a sink receives. It carries the
	// Talkback the sink uses to pull values or to close the source.
	StartSignal SignalKind = iota
	// PushSignal carries the next value of the stream.
	PushSignal
	// EndSignal is the last signal a sink receives. Its Err is non-nil when the
	// producer failed.
	EndSignal
)

func (k SignalKind) String() string {
	switch k {
	case StartSignal:
		return "start"
	case PushSignal:
		return "push"
	case EndSignal:
		return "end"
	default:
		return "unknown"
	}
}

// TalkbackKind identifies a signal travelling from a sink back to its source.
type TalkbackKind int

const (
	// Pull asks the source for the next value.
	Pull TalkbackKind = iota
	// Close tears the source down. No signal follows a Close.
	Close
)

func (k TalkbackKind) String() string {
	if k == Close {
		return "close"
	}
	return "pull"
}

// Talkback is the handle handed to a sink with the StartSignal.
type Talkback func(TalkbackKind)

// NoopTalkback ignores every talkback signal. Operators use it as a placeholder
// until the upstream source has started.
func NoopTalkback(TalkbackKind) {}

// Signal is the single message type flowing from a Source to a Sink.
type Signal[T any] struct {
	Kind     SignalKind
	Talkback Talkback
	Value    T
	Err      error
}

// Start returns a StartSignal carrying the given talkback.
func Start[T any](talkback Talkback) Signal[T] {
	return Signal[T]{Kind: StartSignal, Talkback: talkback}
}

// Push returns a PushSignal carrying the given value.
func Push[T any](value T) Signal[T] {
	return Signal[T]{Kind: PushSignal, Value: value}
}

// End returns an EndSignal. A nil err means the source completed.
func End[T any](err error) Signal[T] {
	return Signal[T]{Kind: EndSignal, Err: err}
}
