package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/fp-source/task"
)

var errBoom = errors.New("boom")

func TestTask_Constructors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := map[string]struct {
		expected    int
		expectedErr error
		subject     task.Task[int]
	}{
		"of": {
			expected: 1,
			subject:  task.Of(1),
		},
		"from-io": {
			expected: 2,
			subject:  task.FromIO(func() int { return 2 }),
		},
		"map": {
			expected: 6,
			subject:  task.Map(task.Of(3), func(n int) int { return n * 2 }),
		},
		"fail": {
			expectedErr: errBoom,
			subject:     task.Fail[int](errBoom),
		},
		"map-keeps-failure": {
			expectedErr: errBoom,
			subject:     task.Map(task.Fail[int](errBoom), func(n int) int { return n * 2 }),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// When
			got, err := c.subject(ctx)

			// Then
			if c.expectedErr != nil {
				require.ErrorIs(t, err, c.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, got)
		})
	}
}

func TestTaskEither(t *testing.T) {
	t.Parallel()

	right, err := task.Right[string, int](1)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mo.Right[string, int](1), right)

	left, err := task.Left[string, int]("a")(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mo.Left[string, int]("a"), left)
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("resolves-in-order", func(t *testing.T) {
		t.Parallel()

		// Given
		slow := func(ctx context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 1, nil
		}

		// When
		got, err := task.All(slow, task.Of(2), task.Of(3))(context.Background())

		// Then
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("first-failure-cancels-the-rest", func(t *testing.T) {
		t.Parallel()

		// Given
		cancelled := make(chan struct{})
		blocked := func(ctx context.Context) (int, error) {
			<-ctx.Done()
			close(cancelled)
			return 0, ctx.Err()
		}

		// When
		_, err := task.All(blocked, task.Fail[int](errBoom))(context.Background())

		// Then
		require.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "task 1 failed")
		<-cancelled
	})

	t.Run("no-tasks", func(t *testing.T) {
		t.Parallel()

		got, err := task.All[int]()(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
