// Package classification of Price Crawl API
//
// # Documentation for Price Crawl API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/pricecrawl/price-crawl-api/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors for a rejected search request
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body domain.ValidationErrors
}

// Aggregated quotes plus per-adapter failures
// swagger:response searchResponse
type searchResponseWrapper struct {
	// Merged results and the adapters that failed
	// in: body
	Body domain.SearchResponse
}

// Liveness probe result
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in: body
	Body struct {
		Status string `json:"status"`
	}
}

// swagger:parameters searchProducts
type searchBodyParamsWrapper struct {
	// Query to aggregate prices for.
	// in: body
	// required: true
	Body domain.SearchRequest
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}
