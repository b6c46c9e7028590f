package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/MobMissions_Go/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Publish never fails for the caller once the event has been accepted.
type ResilientPublisher struct {
	bus        Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewResilientPublisher starts the retry worker. Failed events are retried up to
// maxRetries times with exponential backoff from baseDelay.
func NewResilientPublisher(bus Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// Publish satisfies Bus
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry delivers the event, queuing it for retry when the first attempt fails
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryItem{event: event, attempts: 1, lastErr: err})
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker. Events still waiting are written to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case <-p.shutdown:
		p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.queue <- item:
	default:
		p.writeDeadLetter(item, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempts))
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.shutdown:
		p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
		return
	}

	err := p.bus.Publish(context.Background(), item.event)
	item.attempts++
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", item.event.Type,
			"attempts", item.attempts)
		return
	}

	item.lastErr = err
	if item.attempts > p.maxRetries {
		p.writeDeadLetter(item, LogMsgEventRetryExhausted)
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", item.event.Type,
		"attempts", item.attempts,
		"error", err)
	p.enqueue(item)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem, reason string) {
	lastErr := item.lastErr
	if lastErr == nil {
		lastErr = errors.New(reason)
	}
	if err := p.deadLetter.Write(item.event, item.attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed,
			"event_type", item.event.Type,
			"reason", reason,
			"error", err)
	}
}
