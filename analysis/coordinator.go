package analysis

import (
	"context"
	"sync"

	"github.com/clipsense/clipsense/logging"
)

// Result is the outcome of one analysis request
type Result struct {
	Value any
	Err   error
}

// Pending is the deferred result of a submitted request
type Pending struct {
	id   uint64
	done chan Result
}

// Done returns a channel that receives exactly one Result
func (p *Pending) Done() <-chan Result {
	return p.done
}

// Wait blocks until the request completes or the context is canceled
func (p *Pending) Wait(ctx context.Context) (any, error) {
	select {
	case res := <-p.done:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type request struct {
	id   uint64
	ctx  context.Context
	run  func(context.Context) (any, error)
	done chan Result
}

// Coordinator serializes whole-file analysis requests for one modality.
// Requests are serviced in FIFO order by a single consumer worker, so at
// most one request's sub-analysis set is ever in flight; within a
// request, the run function is free to fan out concurrently.
type Coordinator struct {
	mu     sync.Mutex
	queue  []*request
	nextID uint64
	closed bool

	kick chan struct{}
	wg   sync.WaitGroup

	handlerMu sync.RWMutex
	handlers  []EventHandler

	logger logging.Logger
}

// NewCoordinator creates a coordinator and starts its consumer worker
func NewCoordinator(modality string) *Coordinator {
	c := &Coordinator{
		kick: make(chan struct{}, 1),
		logger: logging.WithFields(logging.Fields{
			"component": "coordinator",
			"modality":  modality,
		}),
	}

	c.wg.Add(1)
	go c.loop()

	return c
}

// OnEvent registers a lifecycle event handler. Register handlers before
// submitting requests; registration is not synchronized with in-flight
// emissions.
func (c *Coordinator) OnEvent(handler EventHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Submit enqueues a request and returns its deferred result. The run
// function is invoked with the submission context once the request
// reaches the head of the queue.
func (c *Coordinator) Submit(ctx context.Context, run func(context.Context) (any, error)) (*Pending, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrContextUnavailable
	}

	c.nextID++
	req := &request{
		id:   c.nextID,
		ctx:  ctx,
		run:  run,
		done: make(chan Result, 1),
	}
	c.queue = append(c.queue, req)
	c.mu.Unlock()

	select {
	case c.kick <- struct{}{}:
	default:
	}

	return &Pending{id: req.id, done: req.done}, nil
}

// CancelPending drops a request that has not started yet. Returns false
// when the request is already running or finished. In-flight computation
// is not preemptible; only queued requests can be canceled here.
func (c *Coordinator) CancelPending(p *Pending) bool {
	if p == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, req := range c.queue {
		if req.id == p.id {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			req.done <- Result{Err: context.Canceled}
			return true
		}
	}

	return false
}

// Close stops the consumer worker after the current request finishes.
// Queued requests are rejected with ErrContextUnavailable.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	pending := c.queue
	c.queue = nil
	c.mu.Unlock()

	for _, req := range pending {
		req.done <- Result{Err: ErrContextUnavailable}
	}

	close(c.kick)
	c.wg.Wait()
}

// loop is the single consumer worker: it drains the queue one request at
// a time, which is what guarantees single-flight processing.
func (c *Coordinator) loop() {
	defer c.wg.Done()

	for range c.kick {
		for {
			c.mu.Lock()
			if len(c.queue) == 0 {
				c.mu.Unlock()
				break
			}
			req := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()

			c.process(req)
		}
	}
}

// process runs one dequeued request and completes its deferred result.
// Failure of the run function fails the whole request; the queue then
// advances regardless of outcome.
func (c *Coordinator) process(req *request) {
	c.emit(Event{Type: EventAnalysisStarted})

	if err := req.ctx.Err(); err != nil {
		c.logger.Debug("request context expired before start", logging.Fields{"request_id": req.id})
		c.emit(Event{Type: EventError, Err: err})
		req.done <- Result{Err: err}
		return
	}

	value, err := req.run(req.ctx)
	if err != nil {
		c.logger.Error(err, "analysis request failed", logging.Fields{"request_id": req.id})
		c.emit(Event{Type: EventError, Err: err, Stage: stageOf(err)})
		req.done <- Result{Err: err}
		return
	}

	c.emit(Event{Type: EventAnalysisComplete, Result: value})
	req.done <- Result{Value: value}
}

// emit delivers an event to all registered handlers
func (c *Coordinator) emit(event Event) {
	c.handlerMu.RLock()
	handlers := c.handlers
	c.handlerMu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
