package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest lets the same contract run against every implementation.
func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()

	switch name {
	case "sqlite":
		s, err := NewSQLiteStore(":memory:", time.Second)
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	case "memory":
		return NewMemoryStore()
	default:
		t.Fatalf("unknown store: %s", name)
		return nil
	}
}

func TestStore_Contract(t *testing.T) {
	for _, impl := range []string{"sqlite", "memory"} {
		t.Run(impl, func(t *testing.T) {
			ctx := context.Background()

			t.Run("should report absent key as not found", func(t *testing.T) {
				s := storeUnderTest(t, impl)

				value, found, err := s.Get(ctx, "projects")

				require.NoError(t, err)
				assert.False(t, found)
				assert.Empty(t, value)
			})

			t.Run("should return what was stored", func(t *testing.T) {
				s := storeUnderTest(t, impl)

				require.NoError(t, s.Set(ctx, "projects", `[{"id":"p1"}]`))

				value, found, err := s.Get(ctx, "projects")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, `[{"id":"p1"}]`, value)
			})

			t.Run("should replace an existing value", func(t *testing.T) {
				s := storeUnderTest(t, impl)

				require.NoError(t, s.Set(ctx, "projects", "first"))
				require.NoError(t, s.Set(ctx, "projects", "second"))

				value, found, err := s.Get(ctx, "projects")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, "second", value)
			})

			t.Run("should keep keys independent", func(t *testing.T) {
				s := storeUnderTest(t, impl)

				require.NoError(t, s.Set(ctx, "a", "1"))
				require.NoError(t, s.Set(ctx, "b", "2"))

				value, _, err := s.Get(ctx, "a")
				require.NoError(t, err)
				assert.Equal(t, "1", value)
			})
		})
	}
}

func TestSQLiteStore_WriteTimeoutBoundsSet(t *testing.T) {
	// A timeout this small has always expired by the time the write runs,
	// so the bounded context must surface as a set failure.
	s, err := NewSQLiteStore(":memory:", time.Nanosecond)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	err = s.Set(context.Background(), "projects", "value")

	assert.Error(t, err)
}

func TestMemoryStore_InjectedFailures(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.SetErr = errors.New("disk full")

	err := s.Set(ctx, "projects", "value")

	assert.Error(t, err)
	assert.Equal(t, 1, s.SetCalls)

	_, found, getErr := s.Get(ctx, "projects")
	require.NoError(t, getErr)
	assert.False(t, found, "failed set must not store the value")
}
