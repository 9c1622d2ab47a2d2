package adapter

import (
	"context"
	"testing"

	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

type stubAdapter struct{ name string }

func (s stubAdapter) Name() string { return s.name }

func (s stubAdapter) Search(ctx context.Context, query string) ([]domain.PriceQuote, error) {
	return nil, nil
}

func TestRegistryRejectsInvalidNames(t *testing.T) {
	testCases := []struct {
		name        string
		adapterName string
		valid       bool
	}{
		{"Valid name", "Broadway", true},
		{"Blank name", "", false},
		{"Whitespace name", "   ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(stubAdapter{name: tc.adapterName})

			if tc.valid && err != nil {
				t.Fatalf("Expected valid registration, got error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("Expected invalid registration, got no error")
			}
		})
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(stubAdapter{name: "Fortress"}); err != nil {
		t.Fatalf("Unexpected error on first registration: %v", err)
	}
	if err := r.Register(stubAdapter{name: "Fortress"}); err == nil {
		t.Fatalf("Expected duplicate registration to fail")
	}
	if r.Len() != 1 {
		t.Fatalf("Expected 1 adapter, got %d", r.Len())
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"Broadway", "Fortress", "Price.com.hk"}
	for _, n := range names {
		if err := r.Register(stubAdapter{name: n}); err != nil {
			t.Fatalf("Unexpected error registering %q: %v", n, err)
		}
	}

	adapters := r.Adapters()
	if len(adapters) != len(names) {
		t.Fatalf("Expected %d adapters, got %d", len(names), len(adapters))
	}
	for i, a := range adapters {
		if a.Name() != names[i] {
			t.Fatalf("Expected %q at position %d, got %q", names[i], i, a.Name())
		}
	}
}

func TestAdaptersReturnsACopy(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stubAdapter{name: "Broadway"}, stubAdapter{name: "Fortress"})

	adapters := r.Adapters()
	adapters[0] = stubAdapter{name: "Tampered"}

	if r.Adapters()[0].Name() != "Broadway" {
		t.Fatalf("Registry was mutated through the returned slice")
	}
}

func TestFailureError(t *testing.T) {
	f := NewFailure("Fortress", "HTTP 403", nil)
	if f.Error() != "Fortress: HTTP 403" {
		t.Fatalf("Unexpected error string: %q", f.Error())
	}
}
