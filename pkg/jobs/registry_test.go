package jobs

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("u1")
	assert.False(t, ok)

	require.True(t, r.Start("u1", 10))
	// A second start while running is rejected.
	assert.False(t, r.Start("u1", 5))

	r.Advance("u1")
	r.Advance("u1")
	r.Fail("u1", errors.New("paper 3 failed"))

	st, ok := r.Get("u1")
	require.True(t, ok)
	assert.True(t, st.IsRunning)
	assert.Equal(t, 10, st.Total)
	assert.Equal(t, 2, st.Processed)
	assert.Equal(t, "paper 3 failed", st.LastError)

	r.Finish("u1")
	st, _ = r.Get("u1")
	assert.False(t, st.IsRunning)
	// After finishing, a new run may start.
	assert.True(t, r.Start("u1", 3))
}

func TestRegistry_ETA(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Start("u1", 4))

	// No throughput yet, no ETA.
	st, _ := r.Get("u1")
	assert.Nil(t, st.ETASeconds)

	// Backdate the start so the derived rate is measurable.
	r.mu.Lock()
	r.jobs["u1"].StartTime = time.Now().Add(-10 * time.Second)
	r.jobs["u1"].Processed = 2
	r.mu.Unlock()

	st, _ = r.Get("u1")
	require.NotNil(t, st.ETASeconds)
	// 2 done in ~10s leaves 2 more at ~5s each.
	assert.InDelta(t, 10.0, *st.ETASeconds, 1.0)
}

func TestRegistry_ConcurrentAdvance(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Start("u1", 100))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Advance("u1")
		}()
	}
	wg.Wait()

	st, _ := r.Get("u1")
	assert.Equal(t, 100, st.Processed)
}
