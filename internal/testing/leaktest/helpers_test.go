package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	defer close(done)

	checker.Check(1)
}

func TestGoroutineChecker_WaitsForSlowExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(100 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestWaitFor_ReportsLeftoverGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	assert.Greater(t, waitFor(before, 50*time.Millisecond), before)
}

func TestWaitForGoroutines_Success(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	WaitForGoroutines(t, before, time.Second)
}
