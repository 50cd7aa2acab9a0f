package api

import (
	"context"
	"net/http"

	"wastedesk/internal/models"
)

// NewCompany is the payload for creating or updating a company.
type NewCompany struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ZipCodes    []string `json:"zip_codes"`
}

// Companies fetches all companies.
func (c *Client) Companies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.do(ctx, http.MethodGet, "/companies/", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Company fetches a single company by id.
func (c *Client) Company(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := c.do(ctx, http.MethodGet, "/companies/"+id, nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateCompany creates a company.
func (c *Client) CreateCompany(ctx context.Context, company NewCompany) (*models.Company, error) {
	var created models.Company
	if err := c.do(ctx, http.MethodPost, "/companies/", company, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCompany replaces a company's mutable fields.
func (c *Client) UpdateCompany(ctx context.Context, id string, company NewCompany) (*models.Company, error) {
	var updated models.Company
	if err := c.do(ctx, http.MethodPut, "/companies/"+id, company, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCompany deletes a company by id.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/companies/"+id, nil, nil)
}
