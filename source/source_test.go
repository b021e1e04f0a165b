package source_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/fp-source/helpers"
	"github.com/arielf-camacho/fp-source/operators"
	"github.com/arielf-camacho/fp-source/scheduler"
	"github.com/arielf-camacho/fp-source/sinks"
	"github.com/arielf-camacho/fp-source/source"
	"github.com/arielf-camacho/fp-source/sources"
	"github.com/arielf-camacho/fp-source/task"
)

var errBoom = errors.New("boom")

func double(n int) int { return n * 2 }
func triple(n int) int { return n * 3 }

func TestSource(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected []int
		subject  func() source.Source[int]
	}{
		"of": {
			expected: []int{1},
			subject:  func() source.Source[int] { return source.Of(1) },
		},
		"map": {
			expected: []int{2, 4, 6},
			subject: func() source.Source[int] {
				return source.Map(sources.FromSlice([]int{1, 2, 3}), double)
			},
		},
		"flap": {
			expected: []int{4, 6},
			subject: func() source.Source[int] {
				return source.Flap(sources.FromSlice([]func(int) int{double, triple}), 2)
			},
		},
		"ap-with-synchronous-sources": {
			expected: []int{2, 3, 6, 9},
			subject: func() source.Source[int] {
				return source.Ap(
					sources.FromSlice([]func(int) int{double, triple}),
					sources.FromSlice([]int{1, 2, 3}),
				)
			},
		},
		"ap-with-a-single-function": {
			expected: []int{2, 4, 6},
			subject: func() source.Source[int] {
				return source.Ap(source.Of(double), sources.FromSlice([]int{1, 2, 3}))
			},
		},
		"ap-first": {
			expected: []int{1},
			subject: func() source.Source[int] {
				return source.ApFirst(sources.FromSlice([]int{1}), sources.FromSlice([]int{2}))
			},
		},
		"ap-second": {
			expected: []int{2},
			subject: func() source.Source[int] {
				return source.ApSecond(sources.FromSlice([]int{1}), sources.FromSlice([]int{2}))
			},
		},
		"chain": {
			expected: []int{1, 2, 2, 3, 3, 4},
			subject: func() source.Source[int] {
				return source.Chain(sources.FromSlice([]int{1, 2, 3}), func(a int) source.Source[int] {
					return sources.FromSlice([]int{a, a + 1})
				})
			},
		},
		"chain-first": {
			expected: []int{1, 1, 2, 2, 3, 3},
			subject: func() source.Source[int] {
				return source.ChainFirst(sources.FromSlice([]int{1, 2, 3}), func(a int) source.Source[int] {
					return sources.FromSlice([]int{a, a + 1})
				})
			},
		},
		"flatten": {
			expected: []int{1, 2, 3},
			subject: func() source.Source[int] {
				return source.Flatten(sources.FromSlice([]source.Source[int]{
					source.Of(1), source.Zero[int](), sources.FromSlice([]int{2, 3}),
				}))
			},
		},
		"filter-map": {
			expected: []int{2, 3},
			subject: func() source.Source[int] {
				return source.FilterMap(sources.FromSlice([]int{1, 2, 3}), func(n int) mo.Option[int] {
					if n > 1 {
						return mo.Some(n)
					}
					return mo.None[int]()
				})
			},
		},
		"compact": {
			expected: []int{2, 3},
			subject: func() source.Source[int] {
				return source.Compact(sources.FromSlice([]mo.Option[int]{
					mo.None[int](), mo.Some(2), mo.Some(3),
				}))
			},
		},
		"filter": {
			expected: []int{2, 3},
			subject: func() source.Source[int] {
				return source.Filter(sources.FromSlice([]int{1, 2, 3}), func(n int) bool { return n > 1 })
			},
		},
		"zero": {
			expected: nil,
			subject:  source.Zero[int],
		},
		"alt": {
			expected: []int{1, 2},
			subject: func() source.Source[int] {
				return source.Alt(source.Of(1), func() source.Source[int] { return source.Of(2) })
			},
		},
		"get-monoid": {
			expected: []int{1, 2},
			subject: func() source.Source[int] {
				m := source.GetMonoid[int]()
				return m.Concat(source.Of(1), m.Concat(m.Empty(), source.Of(2)))
			},
		},
		"from-option-some": {
			expected: []int{1},
			subject:  func() source.Source[int] { return source.FromOption(mo.Some(1)) },
		},
		"from-option-none": {
			expected: nil,
			subject:  func() source.Source[int] { return source.FromOption(mo.None[int]()) },
		},
		"from-io": {
			expected: []int{1},
			subject: func() source.Source[int] {
				return source.FromIO(func() int { return 1 })
			},
		},
		"from-source": {
			expected: []int{1, 2},
			subject: func() source.Source[int] {
				return source.FromSource(sources.FromSlice([]int{1, 2}))
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			fa := c.subject()

			// When
			events, err := sinks.ToArray(fa)

			// Then
			require.NoError(t, err)
			assert.Equal(t, c.expected, events)
		})
	}
}

func TestAp_BufferTime(t *testing.T) {
	t.Parallel()

	// Given
	fab := sources.FromSlice([]func(int) int{double, triple})
	fa := sources.FromSlice([]int{1, 2, 3})

	// When
	events, err := source.ToTask(operators.BufferTime(source.Ap(fab, fa), 10*time.Millisecond))(
		context.Background(),
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, events)
}

func TestFromTask(t *testing.T) {
	t.Parallel()

	t.Run("resolves", func(t *testing.T) {
		t.Parallel()

		// When
		value, err := source.ToTask(source.FromTask(task.Of(1)))(context.Background())

		// Then
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	})

	t.Run("fails", func(t *testing.T) {
		t.Parallel()

		// When
		_, err := source.ToTask(source.FromTask(task.Fail[int](errBoom)))(context.Background())

		// Then
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestToTask(t *testing.T) {
	t.Parallel()

	// When
	value, err := source.ToTask(operators.Take(source.Of(1), 1))(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestPartitions(t *testing.T) {
	t.Parallel()

	isBig := func(n int) bool { return n > 1 }
	toEither := func(n int) mo.Either[int, int] {
		if isBig(n) {
			return mo.Right[int, int](n)
		}
		return mo.Left[int, int](n)
	}

	cases := map[string]struct {
		subject func() source.Separated[int, int]
	}{
		"partition-map": {
			subject: func() source.Separated[int, int] {
				return source.PartitionMap(sources.FromSlice([]int{1, 2, 3}), toEither)
			},
		},
		"separate": {
			subject: func() source.Separated[int, int] {
				return source.Separate(source.Map(sources.FromSlice([]int{1, 2, 3}), toEither))
			},
		},
		"partition": {
			subject: func() source.Separated[int, int] {
				return source.Partition(sources.FromSlice([]int{1, 2, 3}), isBig)
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			s := c.subject()

			// When
			left, leftErr := sinks.ToArray(s.Left)
			right, rightErr := sinks.ToArray(s.Right)

			// Then
			require.NoError(t, leftErr)
			require.NoError(t, rightErr)
			assert.Equal(t, []int{1}, left)
			assert.Equal(t, []int{2, 3}, right)
		})
	}
}

func TestSeparate_RunsUnsharedUpstreamPerSide(t *testing.T) {
	t.Parallel()

	// Given
	var runs atomic.Int32
	upstream := sources.Single(func() (mo.Either[string, int], error) {
		runs.Add(1)
		return mo.Right[string, int](1), nil
	})
	s := source.Separate(upstream)

	// When
	left, _ := sinks.ToArray(s.Left)
	right, _ := sinks.ToArray(s.Right)

	// Then
	assert.Empty(t, left)
	assert.Equal(t, []int{1}, right)
	assert.EqualValues(t, 2, runs.Load())
}

func TestSeparate_DeferredUpstreamRunsOnce(t *testing.T) {
	t.Parallel()

	// Given
	var runs atomic.Int32
	release := make(chan struct{})
	upstream := source.FromTask(func(ctx context.Context) (mo.Either[string, int], error) {
		runs.Add(1)
		<-release
		return mo.Left[string, int]("left"), nil
	})
	s := source.Separate(upstream)
	left := helpers.NewCollector[string](context.Background())
	right := helpers.NewCollector[int](context.Background())

	// When
	scheduler.Default().Run(func() {
		s.Left(left.Sink())
		s.Right(right.Sink())
	})
	close(release)

	// Then
	assert.Equal(t, []string{"left"}, left.Items())
	assert.Empty(t, right.Items())
	assert.EqualValues(t, 1, runs.Load())
}

func TestDoNotation(t *testing.T) {
	t.Parallel()

	t.Run("binds-fields", func(t *testing.T) {
		t.Parallel()

		// Given
		fa := source.Bind(source.BindTo(source.Of(1), "a"), "b", func(source.Record) source.Source[string] {
			return source.Of("b")
		})

		// When
		events, err := sinks.ToArray(fa)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []source.Record{{"a": 1, "b": "b"}}, events)
	})

	t.Run("binds-from-do-with-ap-s", func(t *testing.T) {
		t.Parallel()

		// Given
		fa := source.ApS(source.Bind(source.Do(), "a", func(source.Record) source.Source[int] {
			return source.Of(1)
		}), "b", source.Of(true))

		// When
		events, err := sinks.ToArray(fa)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []source.Record{{"a": 1, "b": true}}, events)
	})

	t.Run("later-fields-see-earlier-ones", func(t *testing.T) {
		t.Parallel()

		// Given
		fa := source.Bind(source.BindTo(sources.FromSlice([]int{1, 2}), "a"), "b",
			func(r source.Record) source.Source[int] {
				return source.Of(r["a"].(int) * 10)
			})

		// When
		events, err := sinks.ToArray(fa)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []source.Record{{"a": 1, "b": 10}, {"a": 2, "b": 20}}, events)
	})

	t.Run("rebinding-a-name-panics", func(t *testing.T) {
		t.Parallel()

		// Given
		fa := source.Bind(source.BindTo(source.Of(1), "a"), "a", func(source.Record) source.Source[int] {
			return source.Of(2)
		})

		// Then
		assert.Panics(t, func() {
			_, _ = sinks.ToArray(fa)
		})
	})
}

func TestInstance(t *testing.T) {
	t.Parallel()

	// Given
	var m source.MonadSource[int, string] = source.Instance[int, string]{}
	toString := func(n int) string { return string(rune('a' + n)) }

	// When
	mapped, _ := sinks.ToArray(m.Map(m.Of(1), toString))
	chained, _ := sinks.ToArray(m.Chain(m.FromSource(sources.FromSlice([]int{0, 2})),
		func(n int) source.Source[string] { return source.Of(toString(n)) }))

	// Then
	assert.Equal(t, []string{"b"}, mapped)
	assert.Equal(t, []string{"a", "c"}, chained)
}

func TestLaws(t *testing.T) {
	t.Parallel()

	numbers := func() source.Source[int] { return sources.FromSlice([]int{1, 2, 3}) }
	pair := func(a int) source.Source[int] { return sources.FromSlice([]int{a, a * 10}) }

	cases := map[string]struct {
		left  func() source.Source[int]
		right func() source.Source[int]
	}{
		"functor-composition": {
			left: func() source.Source[int] {
				return source.Map(source.Map(numbers(), double), triple)
			},
			right: func() source.Source[int] {
				return source.Map(numbers(), func(n int) int { return triple(double(n)) })
			},
		},
		"monad-left-identity": {
			left:  func() source.Source[int] { return source.Chain(source.Of(2), pair) },
			right: func() source.Source[int] { return pair(2) },
		},
		"monad-right-identity": {
			left:  func() source.Source[int] { return source.Chain(numbers(), source.Of[int]) },
			right: numbers,
		},
		"alternative-identity": {
			left:  func() source.Source[int] { return source.Alt(numbers(), source.Zero[int]) },
			right: numbers,
		},
		"monoid-identity": {
			left: func() source.Source[int] {
				m := source.GetMonoid[int]()
				return m.Concat(m.Empty(), numbers())
			},
			right: numbers,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// When
			left, leftErr := sinks.ToArray(c.left())
			right, rightErr := sinks.ToArray(c.right())

			// Then
			require.NoError(t, leftErr)
			require.NoError(t, rightErr)
			assert.NotEmpty(t, right)
			assert.Equal(t, right, left)
		})
	}
}

func TestRecord_With(t *testing.T) {
	t.Parallel()

	// Given
	r := source.Record{"a": 1}

	// When
	extended := r.With("b", "b")

	// Then
	assert.Equal(t, source.Record{"a": 1, "b": "b"}, extended)
	assert.Equal(t, source.Record{"a": 1}, r)
	assert.Panics(t, func() { r.With("a", 2) })
}
