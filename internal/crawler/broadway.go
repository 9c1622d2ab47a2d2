package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// Broadway scrapes the Broadway Lifestyle search page.
type Broadway struct {
	name      string
	searchURL string
	client    *Client
	logger    hclog.Logger
}

func NewBroadway(client *Client, logger hclog.Logger) *Broadway {
	return &Broadway{
		name:      "Broadway",
		searchURL: "https://www.broadwaylifestyle.com/search",
		client:    client,
		logger:    logger,
	}
}

func (b *Broadway) Name() string {
	return b.name
}

func (b *Broadway) Search(ctx context.Context, query string) ([]domain.PriceQuote, error) {
	page, err := b.client.FetchPage(ctx, b.searchURL, url.Values{"q": {query}}, nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(page) == "" {
		return []domain.PriceQuote{}, nil
	}

	quotes, err := b.parse(page)
	if err != nil {
		return nil, adapter.NewFailure(b.name, "unparsable payload", err)
	}

	b.logger.Debug("Parsed search page", "query", query, "quotes", len(quotes))
	return quotes, nil
}

func (b *Broadway) parse(page string) ([]domain.PriceQuote, error) {
	root, err := ParseHTML(page)
	if err != nil {
		return nil, err
	}

	quotes := []domain.PriceQuote{}
	for _, tile := range FindAll(root, "li", "product-card") {
		titleEl := FindFirst(tile, "span", "product-card__title")
		priceEl := FindFirst(tile, "span", "product-card__price")
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
		listingURL := ResolveURL(b.searchURL, Attr(linkEl, "href"))

		quotes = append(quotes, domain.PriceQuote{
			SKU:      DeriveSKU(name, listingURL),
			Name:     name,
			Retailer: b.name,
			Price:    price.InexactFloat64(),
			Currency: currency,
			URL:      &listingURL,
		})
	}

	return quotes, nil
}
