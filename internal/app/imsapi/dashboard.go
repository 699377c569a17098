package imsapi

import (
	"context"
	"net/http"

	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

// Summary fetches the aggregated dashboard snapshot for the given user.
func (c *Client) Summary(ctx context.Context, userID string) (models.Summary, error) {
	var s models.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", userID, nil, &s); err != nil {
		return models.Summary{}, err
	}
	return s, nil
}

type filterResponse struct {
	Count     int               `json:"count"`
	Documents []models.Document `json:"documents"`
}

// FilterDocuments fetches the recent operations matching the filter state.
// The service ANDs dimensions together and ORs options within a dimension,
// sorts by created_at descending, and caps the list at its own limit.
// Count is the total number of matches before the cap.
func (c *Client) FilterDocuments(ctx context.Context, userID string, filters uistate.FilterState) ([]models.Document, int, error) {
	var res filterResponse
	if err := c.do(ctx, http.MethodPost, "/documents/filter", userID, filters, &res); err != nil {
		return nil, 0, err
	}
	return res.Documents, res.Count, nil
}

type productsResponse struct {
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

// Products fetches the current product list.
func (c *Client) Products(ctx context.Context, userID string) ([]models.Product, int, error) {
	var res productsResponse
	if err := c.do(ctx, http.MethodGet, "/stock/products", userID, nil, &res); err != nil {
		return nil, 0, err
	}
	return res.Products, res.Count, nil
}
