package summary

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBulkConfig() *config.BulkConfig {
	return &config.BulkConfig{
		PaperWorkers:  3,
		PromptWorkers: 4,
	}
}

func TestBulkRun_ProcessesAllTasks(t *testing.T) {
	registry := jobs.NewRegistry()
	runner := NewBulkRunner(testBulkConfig(), registry)

	var prompts, afters atomic.Int32
	tasks := make([]Task, 5)
	for i := range tasks {
		tasks[i] = Task{
			PaperID: fmt.Sprintf("p%d", i),
			Prompts: []func(ctx context.Context) error{
				func(ctx context.Context) error { prompts.Add(1); return nil },
				func(ctx context.Context) error { prompts.Add(1); return nil },
			},
			After: func(ctx context.Context) error { afters.Add(1); return nil },
		}
	}

	require.NoError(t, runner.Run(context.Background(), "u1", tasks))
	assert.Equal(t, int32(10), prompts.Load())
	assert.Equal(t, int32(5), afters.Load())

	st, ok := registry.Get("u1")
	require.True(t, ok)
	assert.False(t, st.IsRunning)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 5, st.Processed)
	assert.Empty(t, st.LastError)
}

func TestBulkRun_FailuresAreRecordedAndSkipped(t *testing.T) {
	registry := jobs.NewRegistry()
	runner := NewBulkRunner(testBulkConfig(), registry)

	tasks := []Task{
		{PaperID: "p0", Prompts: []func(ctx context.Context) error{
			func(ctx context.Context) error { return errors.New("generation failed for p0") },
		}},
		{PaperID: "p1", Prompts: []func(ctx context.Context) error{
			func(ctx context.Context) error { return nil },
		}},
	}

	require.NoError(t, runner.Run(context.Background(), "u1", tasks))

	st, _ := registry.Get("u1")
	assert.Equal(t, 2, st.Processed, "a failed paper still counts as processed")
	assert.Contains(t, st.LastError, "generation failed for p0")
}

func TestBulkRun_RejectsConcurrentRun(t *testing.T) {
	registry := jobs.NewRegistry()
	runner := NewBulkRunner(testBulkConfig(), registry)

	require.True(t, registry.Start("u1", 1))
	err := runner.Run(context.Background(), "u1", []Task{{PaperID: "p0"}})
	assert.ErrorIs(t, err, ErrBulkAlreadyRunning)
}

func TestBulkRun_BoundedPaperFanOut(t *testing.T) {
	registry := jobs.NewRegistry()
	runner := NewBulkRunner(&config.BulkConfig{PaperWorkers: 2, PromptWorkers: 1}, registry)

	var inFlight, peak atomic.Int32
	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = Task{
			PaperID: fmt.Sprintf("p%d", i),
			Prompts: []func(ctx context.Context) error{
				func(ctx context.Context) error {
					now := inFlight.Add(1)
					for {
						p := peak.Load()
						if now <= p || peak.CompareAndSwap(p, now) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					inFlight.Add(-1)
					return nil
				},
			},
		}
	}

	require.NoError(t, runner.Run(context.Background(), "u1", tasks))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
