package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/logger"
)

// BaseWorker keeps one timer per id and cancels them all on shutdown
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	closed   bool
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn after d, replacing any timer already registered for id.
// It reports false once the worker is shutting down.
func (w *BaseWorker) schedule(id uuid.UUID, d time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	if existing, ok := w.timers[id]; ok {
		existing.Stop()
	}
	var timer *time.Timer
	// The callback reads timer under mu, after it is assigned
	timer = time.AfterFunc(d, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.mu.Lock()
		if w.timers[id] == timer {
			delete(w.timers, id)
		}
		w.mu.Unlock()
		fn()
	})
	w.timers[id] = timer
	return true
}

// isScheduled reports whether a timer is waiting for id
func (w *BaseWorker) isScheduled(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.timers[id]
	return ok
}

// pending reports how many timers are waiting to fire
func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// stopTimers closes the shutdown channel and cancels every pending timer
func (w *BaseWorker) stopTimers(ctx context.Context, workerName string) {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.shutdown)

	for id, timer := range w.timers {
		timer.Stop()
		log.Debug("Cancelled pending "+workerName+" timer", "id", id)
	}
	log.Info("Cancelled "+workerName+" timers", "count", len(w.timers))
	w.timers = make(map[uuid.UUID]*time.Timer)
}
