package http

import (
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/pricecrawl/price-crawl-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	sh *SearchHandler,
	validator *domain.Validation,
	logger hclog.Logger,
	metricsHandler http.Handler,
) *mux.Router {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger, validator, nil) // nil for default CORS config

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Public routes (no request body, so validation middleware not needed)
	router.HandleFunc("/healthz", sh.Health).Methods("GET")

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.Handle("/metrics", metricsHandler).Methods("GET")

	// Search requires the validation middleware (request body validation)
	postRouter := router.Methods("POST").Subrouter()
	postRouter.HandleFunc("/search", sh.Search)
	postRouter.Use(mw.ValidationMiddleware)

	// Preflight requests must match a route for the CORS middleware to run;
	// the middleware answers them before this handler is reached.
	router.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {}).Methods("OPTIONS")

	// Serve the swagger.yaml file from the working directory
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "swagger.yaml")
	}).Methods("GET")

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// Return the configured router
	return router
}
