package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/lifecycle"
)

func TestCoordinator_ReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnStartup(func() { <-release })

	assert.False(t, lc.Ready())

	close(release)
	lc.WaitForStartup()

	assert.True(t, lc.Ready())
}

func TestCoordinator_ShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	var stopped atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		stopped.Store(true)
	})
	lc.WaitForStartup()

	require.NoError(t, lc.Shutdown(time.Second))
	assert.True(t, stopped.Load())
	assert.False(t, lc.Ready())
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	block := make(chan struct{})
	defer close(block)
	lc.OnShutdown(func() { <-block })

	err := lc.Shutdown(10 * time.Millisecond)
	assert.Error(t, err)
}
