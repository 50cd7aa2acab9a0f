package api

import (
	"context"
	"net/http"

	"wastedesk/internal/models"
)

// NewUser is the payload for creating or updating a user.
type NewUser struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Password  string      `json:"password,omitempty"`
	Role      models.Role `json:"role"`
	CompanyID string      `json:"company_id,omitempty"`
}

// Users fetches all users.
func (c *Client) Users(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single user by id.
func (c *Client) User(ctx context.Context, id string) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, user NewUser) (*models.UserProfile, error) {
	var created models.UserProfile
	if err := c.do(ctx, http.MethodPost, "/users/", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser replaces a user's mutable fields.
func (c *Client) UpdateUser(ctx context.Context, id string, user NewUser) (*models.UserProfile, error) {
	var updated models.UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/"+id, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}
