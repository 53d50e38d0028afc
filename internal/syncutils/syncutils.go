// Package syncutils provides synchronization objects for an app-wide usage.

package syncutils

import (
	"context"
	"sync"
)

// SyncUtils defines a new object and sets its attributes.
type SyncUtils struct {
	Wg         *sync.WaitGroup
	Ctx        context.Context
	SyncCancel context.CancelFunc
}

// NewSyncUtils initializes a new SyncUtils object.
func NewSyncUtils() *SyncUtils {
	ctx, cancel := context.WithCancel(context.Background())
	return &SyncUtils{
		Wg:         &sync.WaitGroup{},
		Ctx:        ctx,
		SyncCancel: cancel,
	}
}

// OnShutdown runs fn once the app-wide context is cancelled and tracks it in Wg.
func (s *SyncUtils) OnShutdown(fn func()) {
	s.Wg.Add(1)
	go func() {
		defer s.Wg.Done()
		<-s.Ctx.Done()
		fn()
	}()
}

// Shutdown cancels the app-wide context and waits for tracked routines.
func (s *SyncUtils) Shutdown() {
	s.SyncCancel()
	s.Wg.Wait()
}
