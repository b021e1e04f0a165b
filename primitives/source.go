package primitives

// Source is a provider of values. Invoking it with a Sink starts one
// execution of the producer: the sink first receives a StartSignal, then any
// number of PushSignals, and finally at most one EndSignal. Invoking a Source
// twice runs the producer twice unless it is explicitly shared.
//
// Synchronous sources emit only when pulled, within the call stack of the
// Pull. Asynchronous sources push values later, through a scheduler, and may
// ignore pulls entirely.
//
//	Source f(x) = 1, 2, 3
//
// -- 1 -- 2 -- 3 -- | -->
type Source[T any] func(sink Sink[T])

// Operator transforms a Source into another Source.
type Operator[IN any, OUT any] func(Source[IN]) Source[OUT]
