package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// Fortress scrapes the Fortress search page. Fortress rejects searches
// without a plausible Referer, so each request carries one built from the
// query itself.
type Fortress struct {
	name      string
	searchURL string
	client    *Client
	logger    hclog.Logger
}

func NewFortress(client *Client, logger hclog.Logger) *Fortress {
	return &Fortress{
		name:      "Fortress",
		searchURL: "https://www.fortress.com.hk/en/search",
		client:    client,
		logger:    logger,
	}
}

func (f *Fortress) Name() string {
	return f.name
}

func (f *Fortress) Search(ctx context.Context, query string) ([]domain.PriceQuote, error) {
	headers := map[string]string{
		"Referer": f.searchURL + "?q=" + url.QueryEscape(query),
	}

	page, err := f.client.FetchPage(ctx, f.searchURL, url.Values{"q": {query}}, headers)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(page) == "" {
		return []domain.PriceQuote{}, nil
	}

	quotes, err := f.parse(page)
	if err != nil {
		return nil, adapter.NewFailure(f.name, "unparsable payload", err)
	}

	f.logger.Debug("Parsed search page", "query", query, "quotes", len(quotes))
	return quotes, nil
}

func (f *Fortress) parse(page string) ([]domain.PriceQuote, error) {
	root, err := ParseHTML(page)
	if err != nil {
		return nil, err
	}

	quotes := []domain.PriceQuote{}
	for _, tile := range FindAll(root, "div", "product-tile") {
		titleEl := FindFirst(tile, "div", "product-title")
		priceEl := FindFirst(tile, "div", "product-price")
		linkEl := FindLink(tile)
		if titleEl == nil || priceEl == nil || linkEl == nil {
			continue
		}

		name := Text(titleEl)
		price, err := ParsePrice(Text(priceEl))
		if err != nil {
			return nil, err
		}

		currency := Attr(priceEl, "data-currency")
		if currency == "" {
			currency = "HKD"
		}
		listingURL := ResolveURL(f.searchURL, Attr(linkEl, "href"))

		quotes = append(quotes, domain.PriceQuote{
			SKU:      DeriveSKU(name, listingURL),
			Name:     name,
			Retailer: f.name,
			Price:    price.InexactFloat64(),
			Currency: currency,
			URL:      &listingURL,
		})
	}

	return quotes, nil
}
