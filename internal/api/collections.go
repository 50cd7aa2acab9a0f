package api

import (
	"context"
	"net/http"

	"wastedesk/internal/models"
)

// NewCollection is the payload for creating a collection request.
type NewCollection struct {
	Description string   `json:"description"`
	Latitude    float64  `json:"location_latitude"`
	Longitude   float64  `json:"location_longitude"`
	ZipCode     string   `json:"zip_code"`
	Images      []string `json:"images,omitempty"`
}

// Collections fetches all collection requests visible to the caller.
func (c *Client) Collections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := c.do(ctx, http.MethodGet, "/collections/", nil, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// Collection fetches a single collection by id.
func (c *Client) Collection(ctx context.Context, id string) (*models.Collection, error) {
	var collection models.Collection
	if err := c.do(ctx, http.MethodGet, "/collections/"+id, nil, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// CreateCollection creates a collection request.
func (c *Client) CreateCollection(ctx context.Context, collection NewCollection) (*models.Collection, error) {
	var created models.Collection
	if err := c.do(ctx, http.MethodPost, "/collections/", collection, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignCollection assigns a collection to a collector.
func (c *Client) AssignCollection(ctx context.Context, id, collectorID string) (*models.Collection, error) {
	body := map[string]string{"collector_id": collectorID}
	var assigned models.Collection
	if err := c.do(ctx, http.MethodPost, "/collections/"+id+"/assign", body, &assigned); err != nil {
		return nil, err
	}
	return &assigned, nil
}

// UpdateCollectionStatus transitions a collection's status.
func (c *Client) UpdateCollectionStatus(ctx context.Context, id, status string) (*models.Collection, error) {
	body := map[string]string{"status": status}
	var updated models.Collection
	if err := c.do(ctx, http.MethodPost, "/collections/"+id+"/status", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
