package domain

import "testing"

func TestSearchRequestValidation(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		valid bool
	}{
		{"Valid query", "iphone 15", true},
		{"Empty query", "", false},
		{"Blank query", "   ", false},
		{"Tabs and newlines", "\t\n", false},
		{"Single character", "x", true},
	}

	v := NewValidation()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := &SearchRequest{Query: tc.query}

			errs := v.Validate(req)

			if tc.valid && len(errs) > 0 {
				t.Fatalf("Expected valid query, got errors: %v", errs)
			}
			if !tc.valid && len(errs) == 0 {
				t.Fatalf("Expected invalid query, got no errors")
			}
		})
	}
}

func TestValidQuote(t *testing.T) {
	testCases := []struct {
		name  string
		quote PriceQuote
		valid bool
	}{
		{"Valid quote", PriceQuote{SKU: "1", Name: "Widget", Retailer: "Shop", Price: 9.99}, true},
		{"Free item", PriceQuote{SKU: "1", Name: "Widget", Retailer: "Shop", Price: 0}, true},
		{"Missing SKU", PriceQuote{Name: "Widget", Retailer: "Shop", Price: 9.99}, false},
		{"Missing name", PriceQuote{SKU: "1", Retailer: "Shop", Price: 9.99}, false},
		{"Missing retailer", PriceQuote{SKU: "1", Name: "Widget", Price: 9.99}, false},
		{"Negative price", PriceQuote{SKU: "1", Name: "Widget", Retailer: "Shop", Price: -0.01}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidQuote(tc.quote); got != tc.valid {
				t.Fatalf("ValidQuote() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestDedupKeyIsSourceScoped(t *testing.T) {
	a := PriceQuote{SKU: "123", Retailer: "RetailerA"}
	b := PriceQuote{SKU: "123", Retailer: "RetailerB"}

	if a.DedupKey() == b.DedupKey() {
		t.Fatalf("Quotes from different retailers must not share a dedup key")
	}
	if a.DedupKey() != (Key{Retailer: "RetailerA", SKU: "123"}) {
		t.Fatalf("Unexpected dedup key: %+v", a.DedupKey())
	}
}
