package core

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingFinisher struct {
	calls atomic.Int32
}

func (f *countingFinisher) Fini() { f.calls.Add(1) }

func TestHandleCrashNilIsNoop(t *testing.T) {
	f := &countingFinisher{}
	SetCrashTerminal(f)
	defer SetCrashTerminal(nil)

	HandleCrash(nil)
	if f.calls.Load() != 0 {
		t.Error("terminal finalized without a panic")
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("function did not run")
	}
}
