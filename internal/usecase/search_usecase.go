package usecase

import (
	"context"

	"pklradar/internal/domain/entity"
)

// SearchInput represents the filters of an active vendor listing request
type SearchInput struct {
	Query    string `json:"query" query:"search"`   // Free-text fuzzy query, may be empty
	Category string `json:"category" query:"jenis"` // Exact category filter, may be empty
}

// VendorSearchResult pairs a matched vendor with its score and latest location
type VendorSearchResult struct {
	Vendor   *entity.Vendor         `json:"vendor"`
	Score    float64                `json:"score"`
	Location *entity.VendorLocation `json:"location,omitempty"`
}

// SearchUsecase defines the interface for vendor discovery use cases
type SearchUsecase interface {
	// ListActiveVendors lists active verified vendors matching the filters,
	// fuzzy-ranked when a query is present, and counts search hits for the
	// top results
	ListActiveVendors(ctx context.Context, input *SearchInput) ([]*VendorSearchResult, error)
}
