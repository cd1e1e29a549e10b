package stream

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, sub *Subscription[T]) Snapshot[T] {
	t.Helper()

	select {
	case snap, ok := <-sub.C():
		require.True(t, ok, "subscription closed")

		return snap
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}

	return Snapshot[T]{}
}

func TestHub_PublishAssignsMonotonicSequencePerKey(t *testing.T) {
	hub := NewHub[int](4)
	sub := hub.Subscribe(context.Background(), "u1")
	defer sub.Close()

	assert.Equal(t, uint64(1), hub.Publish("u1", 10))
	assert.Zero(t, hub.Publish("u2", 99), "no subscribers, no sequence")
	assert.Equal(t, uint64(2), hub.Publish("u1", 20))

	first := receive(t, sub)
	second := receive(t, sub)
	assert.Equal(t, 10, first.Data)
	assert.Equal(t, 20, second.Data)
	assert.Less(t, first.Seq, second.Seq)
}

func TestHub_FullQueueDropsOldest(t *testing.T) {
	hub := NewHub[int](2)
	sub := hub.Subscribe(context.Background(), "u1")
	defer sub.Close()

	for i := 1; i <= 5; i++ {
		hub.Publish("u1", i)
	}

	assert.Equal(t, 4, receive(t, sub).Data)
	last := receive(t, sub)
	assert.Equal(t, 5, last.Data)
	assert.Equal(t, uint64(5), last.Seq)
}

func TestHub_ContextCancelUnsubscribes(t *testing.T) {
	hub := NewHub[string](1)
	ctx, cancel := context.WithCancel(context.Background())
	sub := hub.Subscribe(ctx, "u1")
	require.True(t, hub.HasSubscribers("u1"))

	cancel()

	select {
	case _, ok := <-sub.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed on cancel")
	}
	assert.False(t, hub.HasSubscribers("u1"))

	// closing again is harmless
	sub.Close()
}

func TestHub_ClosedKeysLeaveNoState(t *testing.T) {
	hub := NewHub[int](1)

	for i := range 100 {
		key := fmt.Sprintf("u1#%d", i)
		sub := hub.Subscribe(context.Background(), key)
		require.NoError(t, hub.Refresh(context.Background(), key, func(context.Context) (int, error) {
			return i, nil
		}))
		assert.Equal(t, i, receive(t, sub).Data)
		sub.Close()
	}
	hub.Publish("nobody", 1)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Empty(t, hub.subs)
	assert.Empty(t, hub.seq)
}

func TestHub_RefreshSkipsKeysWithoutSubscribers(t *testing.T) {
	hub := NewHub[int](1)
	called := false

	err := hub.Refresh(context.Background(), "nobody", func(context.Context) (int, error) {
		called = true

		return 1, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestHub_RefreshPropagatesLoadError(t *testing.T) {
	hub := NewHub[int](1)
	sub := hub.Subscribe(context.Background(), "u1")
	defer sub.Close()

	boom := errors.New("index down")
	err := hub.Refresh(context.Background(), "u1", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	select {
	case <-sub.C():
		t.Fatal("failed load must not publish")
	default:
	}
}

func TestHub_ConcurrentRefreshesArriveInOrder(t *testing.T) {
	hub := NewHub[int](64)
	sub := hub.Subscribe(context.Background(), "u1")
	defer sub.Close()

	var (
		mu      sync.Mutex
		version int
		wg      sync.WaitGroup
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = hub.Refresh(context.Background(), "u1", func(context.Context) (int, error) {
				mu.Lock()
				defer mu.Unlock()
				version++

				return version, nil
			})
		}()
	}
	wg.Wait()

	prev := Snapshot[int]{}
	for range 20 {
		snap := receive(t, sub)
		assert.Greater(t, snap.Seq, prev.Seq)
		assert.Greater(t, snap.Data, prev.Data)
		prev = snap
	}
}

func TestHub_CloseEndsAllSubscriptions(t *testing.T) {
	hub := NewHub[int](1)
	a := hub.Subscribe(context.Background(), "a")
	b := hub.Subscribe(context.Background(), "b")

	hub.Close()

	_, okA := <-a.C()
	_, okB := <-b.C()
	assert.False(t, okA)
	assert.False(t, okB)

	late := hub.Subscribe(context.Background(), "a")
	_, ok := <-late.C()
	assert.False(t, ok)
	late.Close()
}
