package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const broadwaySearchPage = `<!DOCTYPE html>
<html>
<body>
<ul class="search-results">
  <li class="product-card">
    <a href="/product/sony-a7c">
      <span class="product-card__title">Sony A7C Mirrorless Camera</span>
    </a>
    <span class="product-card__price" data-currency="HKD">HK$12,490</span>
  </li>
  <li class="product-card">
    <a href="/product/nintendo-switch">
      <span class="product-card__title">Nintendo Switch OLED</span>
    </a>
    <span class="product-card__price">HK$2,680</span>
  </li>
  <li class="promo-banner">
    <span>Not a product</span>
  </li>
</ul>
</body>
</html>`

func TestBroadwayParsesSearchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sony", r.URL.Query().Get("q"))
		w.Write([]byte(broadwaySearchPage))
	}))
	defer srv.Close()

	b := NewBroadway(testClient(), hclog.NewNullLogger())
	b.searchURL = srv.URL

	quotes, err := b.Search(context.Background(), "sony")
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	first := quotes[0]
	assert.Equal(t, "Broadway", first.Retailer)
	assert.Equal(t, "Sony A7C Mirrorless Camera", first.Name)
	assert.Equal(t, 12490.0, first.Price)
	assert.Equal(t, "HKD", first.Currency)
	require.NotNil(t, first.URL)
	assert.Equal(t, srv.URL+"/product/sony-a7c", *first.URL)
	assert.Len(t, first.SKU, 12)

	second := quotes[1]
	assert.Equal(t, "Nintendo Switch OLED", second.Name)
	assert.Equal(t, 2680.0, second.Price)
	assert.Equal(t, "HKD", second.Currency, "currency falls back to HKD when the tile has no data-currency")
	assert.NotEqual(t, first.SKU, second.SKU)
}

func TestBroadwayEmptyPageMeansNoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	b := NewBroadway(testClient(), hclog.NewNullLogger())
	b.searchURL = srv.URL

	quotes, err := b.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestBroadwayReportsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	b := NewBroadway(testClient(), hclog.NewNullLogger())
	b.searchURL = srv.URL

	_, err := b.Search(context.Background(), "sony")
	require.Error(t, err)
	assert.Equal(t, "HTTP 403", err.Error())
}
