package hook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	t.Run("unknown event", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.On("before:nothing", func(context.Context, *Context) error { return nil })
		assert.ErrorIs(t, err, ErrUnknownEvent)
		_, err = r.OnSync("after:nothing", func(*Context) error { return nil })
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})

	t.Run("async callback on blocking event", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.On(BeforeHashSync, func(context.Context, *Context) error { return nil })
		assert.ErrorIs(t, err, ErrAsyncOnSyncEvent)
	})

	t.Run("off", func(t *testing.T) {
		r := NewRegistry()
		id1, err := r.OnSync(AfterHash, func(*Context) error { return nil })
		require.NoError(t, err)
		id2, err := r.OnSync(AfterHash, func(*Context) error { return nil })
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)
		assert.Equal(t, 2, r.Len(AfterHash))

		assert.False(t, r.Off(BeforeHash, id1), "wrong event")
		assert.True(t, r.Off(AfterHash, id1))
		assert.False(t, r.Off(AfterHash, id1))
		assert.Equal(t, 1, r.Len(AfterHash))
	})

	t.Run("clear", func(t *testing.T) {
		r := NewRegistry()
		_, _ = r.OnSync(BeforeHash, func(*Context) error { return nil })
		_, _ = r.OnSync(AfterHash, func(*Context) error { return nil })

		r.Clear(BeforeHash)
		assert.Equal(t, 0, r.Len(BeforeHash))
		assert.Equal(t, 1, r.Len(AfterHash))

		r.Clear()
		assert.Equal(t, 0, r.Len(AfterHash))
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("registration order", func(t *testing.T) {
		r := NewRegistry()
		var markers []string
		for _, m := range []string{"first", "second", "third"} {
			_, err := r.On(BeforeHash, func(context.Context, *Context) error {
				markers = append(markers, m)
				return nil
			})
			require.NoError(t, err)
		}

		require.NoError(t, r.Run(ctx, BeforeHash, &Context{}, Policy{}))
		assert.Equal(t, []string{"first", "second", "third"}, markers)
	})

	t.Run("shared context", func(t *testing.T) {
		r := NewRegistry()
		_, _ = r.On(BeforeHash, func(_ context.Context, hc *Context) error {
			hc.Algorithm = "fnv1"
			return nil
		})
		var seen string
		_, _ = r.OnSync(BeforeHash, func(hc *Context) error {
			seen = hc.Algorithm
			return nil
		})

		hc := &Context{Algorithm: "djb2"}
		require.NoError(t, r.Run(ctx, BeforeHash, hc, Policy{}))
		assert.Equal(t, "fnv1", seen)
		assert.Equal(t, "fnv1", hc.Algorithm)
	})

	t.Run("propagate", func(t *testing.T) {
		r := NewRegistry()
		boom := errors.New("boom")
		called := false
		_, _ = r.On(AfterHash, func(context.Context, *Context) error { return boom })
		_, _ = r.On(AfterHash, func(context.Context, *Context) error {
			called = true
			return nil
		})

		err := r.Run(ctx, AfterHash, &Context{}, Policy{Propagate: true})
		require.ErrorIs(t, err, boom)

		var herr *Error
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, AfterHash, herr.Event)
		assert.Equal(t, 0, herr.Index)
		assert.False(t, called, "first failure aborts the chain")
	})

	t.Run("swallow rolls back and continues", func(t *testing.T) {
		r := NewRegistry()
		_, _ = r.OnSync(AfterHash, func(hc *Context) error {
			hc.Hash = "from-first"
			return nil
		})
		_, _ = r.OnSync(AfterHash, func(hc *Context) error {
			hc.Hash = "half-done"
			return errors.New("boom")
		})
		var seen string
		_, _ = r.OnSync(AfterHash, func(hc *Context) error {
			seen = hc.Hash
			return nil
		})

		var failures []*Error
		hc := &Context{Hash: "orig"}
		err := r.Run(ctx, AfterHash, hc, Policy{OnFailure: func(e *Error) { failures = append(failures, e) }})
		require.NoError(t, err)
		assert.Equal(t, "from-first", seen)
		assert.Equal(t, "from-first", hc.Hash)
		require.Len(t, failures, 1)
		assert.Equal(t, 1, failures[0].Index)
	})

	t.Run("panic becomes failure", func(t *testing.T) {
		r := NewRegistry()
		_, _ = r.OnSync(BeforeHash, func(*Context) error { panic("kaboom") })

		err := r.Run(ctx, BeforeHash, &Context{}, Policy{Propagate: true})
		assert.ErrorContains(t, err, "kaboom")
		assert.NoError(t, r.Run(ctx, BeforeHash, &Context{}, Policy{}))
	})

	t.Run("off during run uses snapshot", func(t *testing.T) {
		r := NewRegistry()
		var calls int
		var second ID
		_, _ = r.OnSync(BeforeHash, func(*Context) error {
			calls++
			r.Off(BeforeHash, second)
			return nil
		})
		second, _ = r.OnSync(BeforeHash, func(*Context) error {
			calls++
			return nil
		})

		require.NoError(t, r.Run(ctx, BeforeHash, &Context{}, Policy{}))
		assert.Equal(t, 2, calls)
		assert.Equal(t, 1, r.Len(BeforeHash))
	})
}

func TestRunSync(t *testing.T) {
	r := NewRegistry()
	var markers []int
	for i := range 3 {
		_, err := r.OnSync(BeforeHashSync, func(*Context) error {
			markers = append(markers, i)
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, r.RunSync(BeforeHashSync, &Context{}, Policy{}))
	assert.Equal(t, []int{0, 1, 2}, markers)

	_, _ = r.OnSync(BeforeHashSync, func(*Context) error { return errors.New("nope") })
	err := r.RunSync(BeforeHashSync, &Context{}, Policy{Propagate: true})
	var herr *Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, BeforeHashSync, herr.Event)
	assert.Equal(t, 3, herr.Index)
}

func TestEventBlocking(t *testing.T) {
	assert.False(t, BeforeHash.Blocking())
	assert.False(t, AfterHash.Blocking())
	assert.True(t, BeforeHashSync.Blocking())
	assert.True(t, AfterHashSync.Blocking())
}
