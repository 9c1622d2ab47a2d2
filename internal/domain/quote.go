package domain

// PriceQuote represents one observed offer from a single retailer
//
// swagger:model
type PriceQuote struct {
	// Source-scoped product identifier
	//
	// required: true
	// example: 3f2a9c81d4e0
	SKU string `json:"sku" validate:"required"`

	// The display title of the listing
	//
	// required: true
	// example: Apple iPhone 15 Pro 256GB
	Name string `json:"name" validate:"required"`

	// Identifier of the retailer the quote came from
	//
	// required: true
	// example: Fortress
	Retailer string `json:"retailer" validate:"required"`

	// The listed price in the retailer's currency
	//
	// required: true
	// min: 0
	// example: 9999.00
	Price float64 `json:"price" validate:"gte=0"`

	// ISO currency code or source-defined token
	//
	// required: true
	// example: HKD
	Currency string `json:"currency"`

	// Link to the listing, when the retailer exposes one
	//
	// required: false
	URL *string `json:"url"`
}

// Key identifies a quote for deduplication. Retailer catalogs are
// independent, so SKUs are only comparable within one retailer.
type Key struct {
	Retailer string
	SKU      string
}

// DedupKey returns the (retailer, sku) identity of the quote.
func (q PriceQuote) DedupKey() Key {
	return Key{Retailer: q.Retailer, SKU: q.SKU}
}

// AdapterError records one failed source for a request
//
// swagger:model
type AdapterError struct {
	// Identifier of the adapter that failed
	//
	// required: true
	// example: Broadway
	Adapter string `json:"adapter"`

	// Human-readable failure cause
	//
	// required: true
	// example: HTTP 403
	Error string `json:"error"`
}

// SearchRequest is the body of POST /search
//
// swagger:model
type SearchRequest struct {
	// Product name or keywords to search for
	//
	// required: true
	// example: iphone 15
	Query string `json:"query" validate:"required,notblank"`
}

// SearchResponse is the aggregation result for one query. Results and
// Errors are always present on the wire, even when empty.
//
// swagger:model
type SearchResponse struct {
	// Deduplicated quotes, ascending by price
	Results []PriceQuote `json:"results"`

	// One entry per adapter that failed this request
	Errors []AdapterError `json:"errors"`
}
