package operators

import (
	"github.com/arielf-camacho/fp-source/primitives"
)

// starter holds back an End produced while an operator is still subscribing
// to its upstreams, until its own sink has received the StartSignal.
type starter[T any] struct {
	sink    primitives.Sink[T]
	started bool
	ended   bool
	err     error
}

func (s *starter[T]) start(talkback primitives.Talkback) {
	s.started = true
	s.sink(primitives.Start[T](talkback))
	if s.ended {
		s.sink(primitives.End[T](s.err))
	}
}

func (s *starter[T]) end(err error) {
	if s.started {
		s.sink(primitives.End[T](err))
		return
	}
	s.ended = true
	s.err = err
}
