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

const fortressSearchPage = `<!DOCTYPE html>
<html>
<body>
<div class="search-grid">
  <div class="product-tile">
    <a href="/en/product/iphone-15-pro">
      <div class="product-title">Apple iPhone 15 Pro 256GB</div>
    </a>
    <div class="product-price" data-currency="HKD">HK$9,999.00</div>
  </div>
  <div class="product-tile">
    <a href="/en/product/dyson-v15">
      <div class="product-title">Dyson V15 Detect Absolute</div>
    </a>
    <div class="product-price" data-currency="HKD">HK$6,680.00</div>
  </div>
</div>
</body>
</html>`

func TestFortressParsesSearchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fortressSearchPage))
	}))
	defer srv.Close()

	f := NewFortress(testClient(), hclog.NewNullLogger())
	f.searchURL = srv.URL

	quotes, err := f.Search(context.Background(), "iphone")
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "Fortress", quotes[0].Retailer)
	assert.Equal(t, "Apple iPhone 15 Pro 256GB", quotes[0].Name)
	assert.Equal(t, 9999.0, quotes[0].Price)
	assert.Equal(t, "HKD", quotes[0].Currency)
	require.NotNil(t, quotes[0].URL)
	assert.Equal(t, srv.URL+"/en/product/iphone-15-pro", *quotes[0].URL)

	assert.Equal(t, "Dyson V15 Detect Absolute", quotes[1].Name)
	assert.Equal(t, 6680.0, quotes[1].Price)
}

func TestFortressSendsQueryReferer(t *testing.T) {
	var referer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("Referer")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := NewFortress(testClient(), hclog.NewNullLogger())
	f.searchURL = srv.URL

	_, err := f.Search(context.Background(), "dyson v15")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"?q=dyson+v15", referer)
}

func TestFortressUnparsablePriceFailsThePage(t *testing.T) {
	page := `<html><body>
<div class="product-tile">
  <a href="/en/product/mystery"><div class="product-title">Mystery Item</div></a>
  <div class="product-price">Call for price</div>
</div>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := NewFortress(testClient(), hclog.NewNullLogger())
	f.searchURL = srv.URL

	_, err := f.Search(context.Background(), "mystery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparsable payload")
}
