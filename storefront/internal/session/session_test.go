package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStore_Get(t *testing.T) {
	t.Parallel()
	st := session.NewStore(nil, zap.NewNop())

	a := st.Get("a")
	require.Same(t, a, st.Get("a"))
	require.NotSame(t, a, st.Get("b"))

	gen := st.Get("")
	_, err := uuid.Parse(gen.ID)
	require.NoError(t, err)
	require.Equal(t, 3, st.Len())
}

func TestSession_HeartAndReviews(t *testing.T) {
	t.Parallel()
	sess := session.NewStore(nil, zap.NewNop()).Get("s")

	require.Same(t, sess.Heart("b1"), sess.Heart("b1"))
	require.NotSame(t, sess.Heart("b1"), sess.Heart("b2"))
	require.Equal(t, "b1", sess.Heart("b1").BookID())

	require.Same(t, sess.Reviews("b1"), sess.Reviews("b1"))
}

func TestStore_GetConcurrent(t *testing.T) {
	t.Parallel()
	st := session.NewStore(nil, zap.NewNop())

	var wg sync.WaitGroup
	got := make([]*session.Session, 20)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = st.Get("same")
		}(i)
	}
	wg.Wait()
	for _, s := range got {
		require.Same(t, got[0], s)
	}
	require.Equal(t, 1, st.Len())
}

func TestStore_PeekDoesNotKeep(t *testing.T) {
	t.Parallel()
	st := session.NewStore(nil, zap.NewNop())

	anon := st.Peek("")
	_, err := uuid.Parse(anon.ID)
	require.NoError(t, err)
	require.Equal(t, "unknown", st.Peek("unknown").ID)
	require.Zero(t, st.Len())

	kept := st.Get("kept")
	require.Same(t, kept, st.Peek("kept"))
	require.Equal(t, 1, st.Len())
}

func TestStore_Evict(t *testing.T) {
	t.Parallel()
	st := session.NewStore(nil, zap.NewNop())
	st.Get("old")
	st.Get("fresh")

	require.Zero(t, st.Evict(time.Now(), time.Hour))
	require.Equal(t, 2, st.Len())

	require.Equal(t, 2, st.Evict(time.Now().Add(2*time.Hour), time.Hour))
	require.Zero(t, st.Len())
}

func TestStore_Expire(t *testing.T) {
	t.Parallel()
	st := session.NewStore(nil, zap.NewNop())
	st.Get("a")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		st.Expire(ctx, 20*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	// zero ttl keeps sessions and returns at once
	st.Get("b")
	st.Expire(context.Background(), 0)
	require.Equal(t, 1, st.Len())
}
