// Package worker runs spectrum requests on a pool of goroutines so callers
// can keep interactive work off the compute path.
//
// Each submitted request yields at most one response on its own channel,
// which is closed afterwards. Closing the pool abandons queued and running
// requests: their channels close without a value and no response is
// delivered once teardown has begun.
package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("worker: pool closed")

const (
	defaultWorkers   = 2
	defaultQueueSize = 16
)

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many requests may wait for a free worker.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.queueSize = n
		}
	}
}

// WithLogger sets the pool logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

func withHandler(h func(Request) Response) Option {
	return func(p *Pool) {
		p.handle = h
	}
}

type job struct {
	id  uint64
	ctx context.Context
	req Request
	out chan Response
}

// Pool is a fixed set of goroutines serving Requests.
type Pool struct {
	workers   int
	queueSize int
	logger    *zap.Logger
	handle    func(Request) Response

	jobs   chan job
	done   chan struct{}
	nextID atomic.Uint64

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New starts a pool.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers:   defaultWorkers,
		queueSize: defaultQueueSize,
		logger:    zap.NewNop(),
		handle:    Handle,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.jobs = make(chan job, p.queueSize)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop(i)
	}
	p.logger.Debug("worker pool started",
		zap.Int("workers", p.workers),
		zap.Int("queue_size", p.queueSize))
	return p
}

// Submit queues req. The returned channel yields the response, or is closed
// without a value if the pool is torn down or ctx ends before a worker
// picks the request up. ctx does not interrupt a running computation.
func (p *Pool) Submit(ctx context.Context, req Request) (<-chan Response, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrClosed
	}

	j := job{
		id:  p.nextID.Add(1),
		ctx: ctx,
		req: req,
		out: make(chan Response, 1),
	}
	select {
	case <-p.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	case p.jobs <- j:
		p.logger.Debug("request queued",
			zap.Uint64("request_id", j.id),
			zap.Int("points", len(req.Data)),
			zap.Float64("sample_rate", req.SampleRate))
		return j.out, nil
	}
}

// Close tears the pool down and waits for its goroutines. Pending and
// running requests are abandoned. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.done)

		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.wg.Wait()

		dropped := 0
		for {
			select {
			case j := <-p.jobs:
				close(j.out)
				dropped++
			default:
				p.logger.Debug("worker pool closed", zap.Int("dropped", dropped))
				return
			}
		}
	})
}

func (p *Pool) loop(worker int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case j := <-p.jobs:
			p.run(worker, j)
		}
	}
}

func (p *Pool) run(worker int, j job) {
	defer close(j.out)

	if err := j.ctx.Err(); err != nil {
		p.logger.Debug("request abandoned before start",
			zap.Uint64("request_id", j.id),
			zap.Error(err))
		return
	}

	resp := p.handle(j.req)

	select {
	case <-p.done:
		p.logger.Debug("response dropped after teardown",
			zap.Uint64("request_id", j.id),
			zap.Int("worker", worker))
	default:
		j.out <- resp
		p.logger.Debug("request served",
			zap.Uint64("request_id", j.id),
			zap.Int("worker", worker),
			zap.Int("bins", len(resp.Amplitudes)))
	}
}
