package cpu

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Amr-9/ss58vanity/pkg/generator"
	"github.com/Amr-9/ss58vanity/pkg/generator/polkadot"
)

var log = logrus.WithField("process", "cpu")

// ErrUnsupportedNetwork is returned by Start for a network without a composer.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// CPUGenerator implements the Generator interface using CPU-based goroutines.
type CPUGenerator struct {
	attempts  uint64    // Atomic counter for processed requests
	failed    uint64    // Atomic counter for rejected requests
	startTime time.Time // When generation started
	workers   int       // Number of concurrent workers
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUGenerator{
		workers: workers,
	}
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	attempts := atomic.LoadUint64(&g.attempts)
	elapsed := time.Since(g.startTime).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		Failed:      atomic.LoadUint64(&g.failed),
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Start composes every request in config on the worker pool.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Result, error) {
	if config.Network != generator.Polkadot {
		return nil, errors.Wrap(ErrUnsupportedNetwork, config.Network.String())
	}

	g.startTime = time.Now()
	atomic.StoreUint64(&g.attempts, 0)
	atomic.StoreUint64(&g.failed, 0)

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}
	if workers > len(config.Requests) {
		workers = len(config.Requests)
	}

	resultChan := make(chan generator.Result, len(config.Requests))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.workerPolkadot(ctx, config.Requests, jobs, resultChan)
		}()
	}

	go func() {
		defer close(jobs)
		for i := range config.Requests {
			select {
			case <-ctx.Done():
				log.WithField("remaining", len(config.Requests)-i).Debug("run cancelled")
				return
			case jobs <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	log.WithFields(logrus.Fields{
		"requests": len(config.Requests),
		"workers":  workers,
	}).Debug("run started")

	return resultChan, nil
}

// workerPolkadot composes Polkadot vanity addresses (SS58 prefix 0)
func (g *CPUGenerator) workerPolkadot(ctx context.Context, requests []generator.Request, jobs <-chan int, resultChan chan<- generator.Result) {
	for i := range jobs {
		req := requests[i]
		result := generator.Result{
			Network: generator.Polkadot,
			Index:   i,
			Request: req,
		}

		addr, err := polkadot.WithVanity(req.Text, req.Fill)
		if err != nil {
			atomic.AddUint64(&g.failed, 1)
			log.WithError(err).WithField("text", req.Text).Debug("request rejected")
			result.Err = err
		} else {
			result.Address = addr.String()
			result.Key = addr.Key()
		}
		atomic.AddUint64(&g.attempts, 1)

		// resultChan holds every request, so this send never blocks
		select {
		case <-ctx.Done():
			return
		case resultChan <- result:
		}
	}
}
