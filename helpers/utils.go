package helpers

import (
	"context"

	"github.com/samber/lo"

	"github.com/arielf-camacho/fp-source/primitives"
)

// Feed returns a closed channel already holding values, ready to back a
// channel source.
func Feed[T any](values ...T) <-chan T {
	return lo.SliceToChannel(len(values), values)
}

// Collect collects the values from the given channel into a slice and returns
// it. If the context is done, the function returns the collected values so far.
func Collect[T any](ctx context.Context, source <-chan T) []T {
	var result []T
	for {
		select {
		case <-ctx.Done():
			return result
		case v, ok := <-source:
			if !ok {
				return result
			}
			result = append(result, v)
		}
	}
}

// CollectSource pulls every value of source until it ends and returns them
// with the error it ended with. If ctx is done first, the source is closed and
// the values so far are returned with ctx.Err().
func CollectSource[T any](ctx context.Context, source primitives.Source[T]) ([]T, error) {
	c := NewCollector[T](ctx).Collect(source)
	<-c.Done()

	return c.Items(), c.Err()
}

// Drain drains the given channel until it is closed.
func Drain[T any](source <-chan T) {
	for range source {
	}
}
