package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/adapter"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
)

// PriceDotCom scrapes the Price.com.hk comparison listings. Its markup is
// messier than the store sites, so tiles that fail to yield a price are
// skipped instead of failing the whole page.
type PriceDotCom struct {
	name      string
	searchURL string
	baseURL   string
	client    *Client
	logger    hclog.Logger
}

func NewPriceDotCom(client *Client, logger hclog.Logger) *PriceDotCom {
	return &PriceDotCom{
		name:      "Price.com.hk",
		searchURL: "https://www.price.com.hk/search.php",
		baseURL:   "https://www.price.com.hk",
		client:    client,
		logger:    logger,
	}
}

func (p *PriceDotCom) Name() string {
	return p.name
}

func (p *PriceDotCom) Search(ctx context.Context, query string) ([]domain.PriceQuote, error) {
	params := url.Values{"g": {"0"}, "q": {query}}

	page, err := p.client.FetchPage(ctx, p.searchURL, params, nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(page) == "" {
		return []domain.PriceQuote{}, nil
	}

	quotes, err := p.parse(page)
	if err != nil {
		return nil, adapter.NewFailure(p.name, "unparsable payload", err)
	}

	p.logger.Debug("Parsed search page", "query", query, "quotes", len(quotes))
	return quotes, nil
}

func (p *PriceDotCom) parse(page string) ([]domain.PriceQuote, error) {
	root, err := ParseHTML(page)
	if err != nil {
		return nil, err
	}

	quotes := []domain.PriceQuote{}
	for _, tile := range FindAll(root, "div", "product-list-item") {
		titleEl := FindFirst(tile, "div", "product-list-item__title")
		priceEl := FindFirst(tile, "div", "product-list-item__price")
		if titleEl == nil || priceEl == nil {
			continue
		}

		linkEl := FindLink(titleEl)
		if linkEl == nil {
			continue
		}
		name := Text(titleEl)

		valueEl := FindFirst(priceEl, "span", "product-price__value")
		if valueEl == nil {
			continue
		}
		price, err := ParsePrice(Text(valueEl))
		if err != nil {
			continue
		}

		listingURL := ResolveURL(p.baseURL, Attr(linkEl, "href"))

		quotes = append(quotes, domain.PriceQuote{
			SKU:      DeriveSKU(name, listingURL),
			Name:     name,
			Retailer: p.name,
			Price:    price.InexactFloat64(),
			Currency: "HKD",
			URL:      &listingURL,
		})
	}

	return quotes, nil
}
