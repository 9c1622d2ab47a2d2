package service

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
	"github.com/pricecrawl/price-crawl-api/internal/metrics"
)

// SearchService aggregates price quotes across all registered retailer
// adapters for one query.
type SearchService interface {
	Search(ctx context.Context, query string) (*domain.SearchResponse, error)
}

type searchService struct {
	registry *adapter.Registry
	opts     Options
	logger   hclog.Logger
	metrics  *metrics.SearchMetrics
}

func NewSearchService(
	registry *adapter.Registry,
	opts Options,
	logger hclog.Logger,
	m *metrics.SearchMetrics) (SearchService, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, domain.ErrNoAdapters
	}

	return &searchService{
		registry: registry,
		opts:     opts.withDefaults(),
		logger:   logger,
		metrics:  m,
	}, nil
}

// Search fans the query out to every adapter concurrently, waits for all of
// them to reach a terminal state, and merges the successful outcomes. A
// failed adapter contributes one AdapterError; it never aborts the request.
func (s *searchService) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	s.logger.Debug("Dispatching search", "query", query, "adapters", s.registry.Len())

	outcomes := s.dispatch(ctx, query)

	results := mergeQuotes(outcomes)
	errors := collectErrors(outcomes)

	s.logger.Info("Search completed",
		"query", query,
		"results", len(results),
		"failed_adapters", len(errors))

	return &domain.SearchResponse{
		Results: results,
		Errors:  errors,
	}, nil
}

// collectErrors projects the failed outcomes into the wire shape. Outcomes
// are already in adapter registration order, which keeps the error list
// deterministic across runs.
func collectErrors(outcomes []outcome) []domain.AdapterError {
	errs := make([]domain.AdapterError, 0)
	for _, o := range outcomes {
		if o.failure == nil {
			continue
		}
		errs = append(errs, domain.AdapterError{
			Adapter: o.failure.Adapter,
			Error:   o.failure.Cause,
		})
	}
	return errs
}
