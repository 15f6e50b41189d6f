package summary

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoordinatorConfig() *config.CoordinatorConfig {
	return &config.CoordinatorConfig{
		PollInterval:   5 * time.Millisecond,
		WaitTimeout:    100 * time.Millisecond,
		SafeNumberBump: 100,
		OnePointMarker: "一言でいうと",
	}
}

func testKey() Key {
	return Key{
		Kind:      KindDefault,
		PaperID:   "2401.00001",
		Provider:  "gemini",
		Model:     "gemini-2.0-flash",
		Character: "none",
	}
}

const readyBody = "## 一言でいうと\n注意機構だけで系列変換を実現した。\n\n## 背景\n..."

func okGenerate(calls *atomic.Int32) GenerateFunc {
	return func(ctx context.Context) (*Generation, error) {
		calls.Add(1)
		return &Generation{Body: readyBody, Provider: "gemini", Model: "gemini-2.0-flash"}, nil
	}
}

func TestEnsure_OwnerGeneratesAndExtractsOnePoint(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	var calls atomic.Int32

	out, err := coord.Ensure(context.Background(), testKey(), time.Time{}, okGenerate(&calls))
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, out.Role)
	assert.True(t, out.Generated)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, readyBody, out.Record.Body)
	assert.Equal(t, "注意機構だけで系列変換を実現した。", out.Record.OnePoint)
}

func TestEnsure_ReadyRowReturnsWithoutGeneration(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	var calls atomic.Int32

	_, err := coord.Ensure(context.Background(), testKey(), time.Time{}, okGenerate(&calls))
	require.NoError(t, err)

	out, err := coord.Ensure(context.Background(), testKey(), time.Time{}, okGenerate(&calls))
	require.NoError(t, err)
	assert.Equal(t, RoleReader, out.Role)
	assert.False(t, out.Generated)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEnsure_ConcurrentRequestersShareOneGeneration(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())

	var calls atomic.Int32
	generate := func(ctx context.Context) (*Generation, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return &Generation{Body: readyBody, Provider: "gemini", Model: "gemini-2.0-flash"}, nil
	}

	const requesters = 10
	outcomes := make([]*Outcome, requesters)
	errs := make([]error, requesters)
	var wg sync.WaitGroup
	for i := 0; i < requesters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = coord.Ensure(context.Background(), testKey(), time.Time{}, generate)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	owners := 0
	for i := 0; i < requesters; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, outcomes[i])
		assert.Equal(t, outcomes[0].Record.ID, outcomes[i].Record.ID)
		if outcomes[i].Generated {
			owners++
		}
	}
	assert.Equal(t, 1, owners)
}

func TestEnsure_GenerationFailureDeletesPlaceholder(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())

	_, err := coord.Ensure(context.Background(), testKey(), time.Time{}, func(ctx context.Context) (*Generation, error) {
		return nil, errors.New("provider down")
	})
	require.Error(t, err)

	_, ok := repo.body(testKey())
	assert.False(t, ok, "placeholder should be removed so the next requester starts from ABSENT")

	// The next requester becomes the owner from scratch.
	var calls atomic.Int32
	out, err := coord.Ensure(context.Background(), testKey(), time.Time{}, okGenerate(&calls))
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, out.Role)
}

func TestEnsure_WaiterEscalatesAndStaleOwnerDiscards(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	key := testKey()

	ownerRelease := make(chan struct{})
	ownerDone := make(chan struct{})
	var ownerOut *Outcome
	var ownerErr error
	go func() {
		defer close(ownerDone)
		ownerOut, ownerErr = coord.Ensure(context.Background(), key, time.Time{}, func(ctx context.Context) (*Generation, error) {
			<-ownerRelease
			return &Generation{Body: "stale body", Provider: "gemini", Model: "gemini-2.0-flash"}, nil
		})
	}()

	// Let the owner insert PROCESSING_1.
	require.Eventually(t, func() bool {
		body, ok := repo.body(key)
		if !ok {
			return false
		}
		n, _ := ParseProcessing(body)
		return n == 1
	}, time.Second, time.Millisecond)

	// The waiter times out, bumps the epoch to 2, and generates.
	waiterOut, err := coord.Ensure(context.Background(), key, time.Time{}, func(ctx context.Context) (*Generation, error) {
		return &Generation{Body: readyBody, Provider: "gemini", Model: "gemini-2.0-flash"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, RoleEscalator, waiterOut.Role)
	assert.True(t, waiterOut.Generated)

	// The original owner finishes late; its epoch no longer matches, so
	// the stale body is discarded and the escalator's row wins.
	close(ownerRelease)
	<-ownerDone
	require.NoError(t, ownerErr)
	assert.False(t, ownerOut.Generated)
	assert.Equal(t, readyBody, ownerOut.Record.Body)

	body, ok := repo.body(key)
	require.True(t, ok)
	assert.Equal(t, readyBody, body)
}

func TestEnsure_RowDisappearanceUsesSafeNumber(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	key := testKey()

	_, err := repo.InsertPlaceholder(context.Background(), key, 3)
	require.NoError(t, err)

	var observedEpoch atomic.Int32
	done := make(chan struct{})
	var out *Outcome
	var ensureErr error
	go func() {
		defer close(done)
		out, ensureErr = coord.Ensure(context.Background(), key, time.Time{}, func(ctx context.Context) (*Generation, error) {
			if body, ok := repo.body(key); ok {
				if n, processing := ParseProcessing(body); processing {
					observedEpoch.Store(int32(n))
				}
			}
			return &Generation{Body: readyBody, Provider: "gemini", Model: "gemini-2.0-flash"}, nil
		})
	}()

	// Simulate the owner crashing and its row being cleaned up.
	time.Sleep(10 * time.Millisecond)
	repo.remove(key)

	<-done
	require.NoError(t, ensureErr)
	assert.True(t, out.Generated)
	// 3 + 100 > 101, so the safe epoch is 103.
	assert.Equal(t, int32(103), observedEpoch.Load())
}

func TestEnsure_FallbackRewritesPrimaryRow(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	key := testKey()

	out, err := coord.Ensure(context.Background(), key, time.Time{}, func(ctx context.Context) (*Generation, error) {
		return &Generation{Body: readyBody, Provider: "openai", Model: "gpt-4o-mini", UsedFallback: true}, nil
	})
	require.NoError(t, err)

	// No prior row under the fallback key: the primary row is kept and
	// records the route that actually produced the body.
	assert.Equal(t, "openai", out.Record.Provider)
	assert.Equal(t, "gpt-4o-mini", out.Record.Model)
	_, ok := repo.body(key)
	assert.True(t, ok)
}

func TestEnsure_FallbackReconcilesOntoExistingRow(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	key := testKey()
	fallbackKey := key.WithRoute("openai", "gpt-4o-mini")

	// A READY row already exists under the fallback route's own key.
	_, err := repo.InsertPlaceholder(context.Background(), fallbackKey, 1)
	require.NoError(t, err)
	_, _, err = repo.Finalize(context.Background(), fallbackKey, 1, Final{Body: "old fallback body"})
	require.NoError(t, err)

	out, err := coord.Ensure(context.Background(), key, time.Time{}, func(ctx context.Context) (*Generation, error) {
		return &Generation{Body: readyBody, Provider: "openai", Model: "gpt-4o-mini", UsedFallback: true}, nil
	})
	require.NoError(t, err)

	// The fallback row was updated and the primary placeholder removed.
	assert.Equal(t, readyBody, out.Record.Body)
	_, primaryExists := repo.body(key)
	assert.False(t, primaryExists)
	body, ok := repo.body(fallbackKey)
	require.True(t, ok)
	assert.Equal(t, readyBody, body)
}

func TestEnsure_StaleCustomPromptTriggersRegeneration(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())
	key := testKey()
	key.Kind = KindCustom
	key.UserID = "u1"
	key.PromptID = "p1"

	var calls atomic.Int32
	_, err := coord.Ensure(context.Background(), key, time.Time{}, okGenerate(&calls))
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	// The custom prompt was edited after the row was generated.
	promptUpdatedAt := time.Now().Add(time.Minute)
	out, err := coord.Ensure(context.Background(), key, promptUpdatedAt, okGenerate(&calls))
	require.NoError(t, err)
	assert.True(t, out.Generated)
	assert.Equal(t, int32(2), calls.Load())
}

func TestEnsureDual_BothVariantsGenerate(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())

	noneKey := testKey()
	selKey := testKey()
	selKey.Character = "sakura"
	selKey.Affinity = 2

	var noneCalls, selCalls atomic.Int32
	out := coord.EnsureDual(context.Background(), DualRequest{
		NoneKey:          noneKey,
		SelectedKey:      &selKey,
		GenerateNone:     okGenerate(&noneCalls),
		GenerateSelected: okGenerate(&selCalls),
	})

	require.True(t, out.Succeeded())
	require.NoError(t, out.NoneErr)
	require.NoError(t, out.SelectedErr)
	assert.Equal(t, int32(1), noneCalls.Load())
	assert.Equal(t, int32(1), selCalls.Load())
	assert.NotEqual(t, out.None.Record.ID, out.Selected.Record.ID)
}

func TestEnsureDual_PartialFailure(t *testing.T) {
	repo := newMemRepo()
	coord := NewCoordinator(repo, testCoordinatorConfig())

	noneKey := testKey()
	selKey := testKey()
	selKey.Character = "sakura"

	var calls atomic.Int32
	out := coord.EnsureDual(context.Background(), DualRequest{
		NoneKey:      noneKey,
		SelectedKey:  &selKey,
		GenerateNone: okGenerate(&calls),
		GenerateSelected: func(ctx context.Context) (*Generation, error) {
			return nil, errors.New("provider down")
		},
	})

	assert.True(t, out.Succeeded())
	require.NoError(t, out.NoneErr)
	assert.Error(t, out.SelectedErr)
	assert.Nil(t, out.Selected)
}
