package adapter

import (
	"context"
	"fmt"

	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// Adapter fetches and normalizes price listings from one retailer.
// Implementations perform outbound network I/O and must honor ctx
// cancellation promptly. Finding no matches is a success with an empty
// slice, not an error.
type Adapter interface {
	// Name returns the stable identifier used in error and telemetry
	// reporting. Must be unique across the registry.
	Name() string

	// Search returns zero or more quotes for the query.
	Search(ctx context.Context, query string) ([]domain.PriceQuote, error)
}

// CauseTimeout is the failure cause recorded when an adapter exceeds its
// per-request deadline.
const CauseTimeout = "timeout"

// Failure is a recovered per-source error. It never aborts the request;
// the orchestrator converts it into one AdapterError entry.
type Failure struct {
	Adapter string
	Cause   string
	Err     error
}

func NewFailure(name, cause string, err error) *Failure {
	return &Failure{Adapter: name, Cause: cause, Err: err}
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Adapter, f.Cause, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Adapter, f.Cause)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
