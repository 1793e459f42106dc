package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/pkg/workerpool"
)

func TestSubmitRunsTask(t *testing.T) {
	p := workerpool.New(2)
	defer p.Shutdown()

	var ran atomic.Int32
	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(func() {
			ran.Add(1)
			wg.Done()
		}))
	}
	wg.Wait()

	assert.Equal(t, int32(5), ran.Load())
}

func TestSubmitFullPool(t *testing.T) {
	p := workerpool.New(1)
	defer p.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// Occupy the single worker and fill the buffer.
	require.NoError(t, p.Submit(func() { <-block }))
	var err error
	for i := 0; i < 10; i++ {
		if err = p.Submit(func() { <-block }); err != nil {
			break
		}
	}

	assert.ErrorIs(t, err, workerpool.ErrPoolFull, "a saturated pool must refuse, not block")
}

func TestSubmitAfterShutdown(t *testing.T) {
	p := workerpool.New(1)
	p.Shutdown()

	err := p.Submit(func() {})
	assert.ErrorIs(t, err, workerpool.ErrPoolClosed)
}

func TestPanickingTaskDoesNotKillWorker(t *testing.T) {
	p := workerpool.New(1)
	defer p.Shutdown()

	require.NoError(t, p.Submit(func() { panic("boom") }))

	done := make(chan struct{})
	// Give the panicking task a moment to be picked up first.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, p.Submit(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a panicking task")
	}
}
