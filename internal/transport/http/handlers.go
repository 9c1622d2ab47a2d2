package http

import (
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
	"github.com/pricecrawl/price-crawl-api/internal/service"
)

type SearchHandler struct {
	searchService service.SearchService
	logger        hclog.Logger
}

func NewSearchHandler(ss service.SearchService, log hclog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: ss,
		logger:        log,
	}
}

// Search handles POST /search
//
// swagger:route POST /search search searchProducts
//
// Aggregates price quotes for a query across all retailers. Partial or
// total adapter failure is still a 200: failed sources are reported in the
// errors list, not as a transport error.
//
// Responses:
//
//	200: searchResponse
//	400: errorResponse
//	422: validationErrorResponse
//	500: errorResponse
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated request from the context
	req, ok := r.Context().Value(ContextKeySearchRequest).(*domain.SearchRequest)
	if !ok {
		http.Error(w, "Invalid search request", http.StatusBadRequest)
		return
	}

	resp, err := h.searchService.Search(r.Context(), req.Query)
	if err != nil {
		if err == domain.ErrEmptyQuery {
			http.Error(w, "Query must not be empty", http.StatusBadRequest)
			return
		}
		h.logger.Error("Error running search", "error", err)
		http.Error(w, "Error running search", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Health handles GET /healthz
//
// swagger:route GET /healthz health healthCheck
//
// Liveness probe.
//
// Responses:
//
//	200: healthResponse
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
