package syncutils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestShutdownRunsHooks(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSyncUtils()
	var calls int32
	s.OnShutdown(func() { atomic.AddInt32(&calls, 1) })
	s.OnShutdown(func() { atomic.AddInt32(&calls, 1) })

	s.Shutdown()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Error(t, s.Ctx.Err())
}

func TestHooksWaitForCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSyncUtils()
	var calls int32
	s.OnShutdown(func() { atomic.AddInt32(&calls, 1) })

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	s.Shutdown()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
