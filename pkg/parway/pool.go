//go:build parallel

package parway

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"
)

// Pool is a fixed-size set of worker goroutines reusable across calls.
// It holds no call-specific state between invocations. A Pool must be
// closed when no longer needed and must not be used afterwards.
//
// Work units must not dispatch onto the pool running them: once every
// worker is occupied, the nested submit can never be picked up.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	log     *zap.Logger

	// sendMu is read-held across every task send so Close cannot close
	// the channel under an in-flight submit.
	sendMu sync.RWMutex

	mu      sync.Mutex
	closed  bool
	latency *hdrhistogram.Histogram
}

// NewPool starts a pool. With no options the worker count is the ambient
// parallelism reported by runtime.GOMAXPROCS.
func NewPool(opts ...Option) (*Pool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		workers: o.workerCount(),
		tasks:   make(chan func()),
		log:     o.log(),
	}
	if o.latencyStats {
		// Unit latencies from 1µs up to one minute, three significant digits.
		p.latency = hdrhistogram.New(1, time.Minute.Microseconds(), 3)
	}
	for range p.workers {
		p.wg.Add(1)
		go p.worker()
	}
	p.log.Debug("pool started", zap.Int("workers", p.workers))
	return p, nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after in-flight tasks finish. Closing twice is
// a no-op.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.sendMu.Lock()
	close(p.tasks)
	p.sendMu.Unlock()
	p.wg.Wait()
	p.log.Debug("pool closed")
}

func (p *Pool) submit(task func()) error {
	p.sendMu.RLock()
	defer p.sendMu.RUnlock()

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return &ConfigError{Reason: "pool is closed"}
	}
	p.tasks <- task
	return nil
}

// slots bounds the number of concurrent index grabbers for one call.
func (p *Pool) slots(o Options, n int) int {
	s := p.workers
	if o.Workers > 0 && o.Workers < s {
		s = o.Workers
	}
	if n < s {
		s = n
	}
	return s
}

func (p *Pool) record(d time.Duration) {
	if p.latency == nil {
		return
	}
	p.mu.Lock()
	_ = p.latency.RecordValue(d.Microseconds())
	p.mu.Unlock()
}

// LatencySnapshot summarizes recorded work unit latencies.
type LatencySnapshot struct {
	Count int64
	P50   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// Stats returns the latency summary. It reports false when the pool was
// created without WithLatencyStats.
func (p *Pool) Stats() (LatencySnapshot, bool) {
	if p.latency == nil {
		return LatencySnapshot{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return LatencySnapshot{
		Count: p.latency.TotalCount(),
		P50:   time.Duration(p.latency.ValueAtQuantile(50)) * time.Microsecond,
		P99:   time.Duration(p.latency.ValueAtQuantile(99)) * time.Microsecond,
		Max:   time.Duration(p.latency.Max()) * time.Microsecond,
	}, true
}
