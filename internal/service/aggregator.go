package service

import (
	"sort"

	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// mergeQuotes deduplicates the successful outcomes by (retailer, sku) and
// orders the survivors ascending by price. When the same key occurs more
// than once, the lowest price wins; on an exact price tie the quote seen
// first (adapter registration order, then emission order) survives. Quotes
// that fail validation are dropped. Pure function of its input.
func mergeQuotes(outcomes []outcome) []domain.PriceQuote {
	best := make(map[domain.Key]domain.PriceQuote)

	for _, o := range outcomes {
		if o.failure != nil {
			continue
		}
		for _, q := range o.quotes {
			if !domain.ValidQuote(q) {
				continue
			}
			key := q.DedupKey()
			existing, seen := best[key]
			if !seen || q.Price < existing.Price {
				best[key] = q
			}
		}
	}

	merged := make([]domain.PriceQuote, 0, len(best))
	for _, q := range best {
		merged = append(merged, q)
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		if a.Retailer != b.Retailer {
			return a.Retailer < b.Retailer
		}
		return a.SKU < b.SKU
	})

	return merged
}
