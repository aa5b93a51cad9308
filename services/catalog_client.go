package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tastetrack/ordering/models"
)

// CatalogClient reads restaurants and menu items from the upstream catalog.
// The cart add flow resolves every item through it so captured prices come
// from the catalog, never from the request body.
type CatalogClient struct {
	apiTransport
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{apiTransport: newAPITransport(baseURL)}
}

func (c *CatalogClient) GetRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants", "", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *CatalogClient) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+id, "", nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *CatalogClient) SearchRestaurants(ctx context.Context, query string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	path := "/restaurants/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *CatalogClient) GetOpenRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/open", "", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *CatalogClient) GetMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu-items/restaurant/"+restaurantID, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CatalogClient) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu-items/"+id, "", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
