package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// Options tunes the fan-out behavior of the search service.
type Options struct {
	// AdapterTimeout bounds each adapter invocation independently. It is
	// not an aggregate budget: the request completes when the slowest
	// adapter finishes or hits this deadline.
	AdapterTimeout time.Duration
}

const defaultAdapterTimeout = 10 * time.Second

func (o Options) withDefaults() Options {
	if o.AdapterTimeout <= 0 {
		o.AdapterTimeout = defaultAdapterTimeout
	}
	return o
}

// outcome is the terminal state of one adapter invocation. Exactly one of
// quotes or failure is meaningful.
type outcome struct {
	adapter string
	quotes  []domain.PriceQuote
	failure *adapter.Failure
}

// dispatch runs every registered adapter in its own goroutine under its own
// deadline. Each goroutine writes into its own slot of the outcomes slice,
// so no lock is needed; the WaitGroup is the only synchronization point.
// The returned slice is in adapter registration order.
func (s *searchService) dispatch(ctx context.Context, query string) []outcome {
	adapters := s.registry.Adapters()
	outcomes := make([]outcome, len(adapters))

	var wg sync.WaitGroup
	for i, a := range adapters {
		wg.Add(1)
		go func(i int, a adapter.Adapter) {
			defer wg.Done()
			outcomes[i] = s.runAdapter(ctx, a, query)
		}(i, a)
	}
	wg.Wait()

	return outcomes
}

func (s *searchService) runAdapter(ctx context.Context, a adapter.Adapter, query string) outcome {
	name := a.Name()
	start := time.Now()

	quotes, err := s.invoke(ctx, a, query)

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.ObserveSearch(name, err, elapsed)
	}

	if err != nil {
		failure := classifyFailure(name, err)
		s.logger.Warn("Adapter failed",
			"adapter", name,
			"cause", failure.Cause,
			"duration", elapsed)
		return outcome{adapter: name, failure: failure}
	}

	s.logger.Debug("Adapter succeeded",
		"adapter", name,
		"quotes", len(quotes),
		"duration", elapsed)
	return outcome{adapter: name, quotes: quotes}
}

// invoke calls Search under the per-adapter deadline. The inner goroutine
// guards against adapters that neither return nor honor cancellation: the
// orchestrator stops waiting once the deadline fires, even if the adapter
// goroutine is still stuck in I/O. A panic escaping the adapter is an
// internal-fault containment case and becomes an ordinary failure.
func (s *searchService) invoke(ctx context.Context, a adapter.Adapter, query string) ([]domain.PriceQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.AdapterTimeout)
	defer cancel()

	type result struct {
		quotes []domain.PriceQuote
		err    error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("adapter panic: %v", r)}
			}
		}()
		quotes, err := a.Search(ctx, query)
		done <- result{quotes: quotes, err: err}
	}()

	select {
	case res := <-done:
		return res.quotes, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func classifyFailure(name string, err error) *adapter.Failure {
	var failure *adapter.Failure
	if errors.As(err, &failure) {
		return failure
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return adapter.NewFailure(name, adapter.CauseTimeout, err)
	}
	return adapter.NewFailure(name, err.Error(), err)
}
