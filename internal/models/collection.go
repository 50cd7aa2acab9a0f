package models

import "time"

// Collection statuses as reported by the API.
const (
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Collection is a single pickup request.
type Collection struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Latitude    float64   `json:"location_latitude"`
	Longitude   float64   `json:"location_longitude"`
	ZipCode     string    `json:"zip_code"`
	Images      []string  `json:"images,omitempty"`
	Status      string    `json:"status"`
	CollectorID string    `json:"collector_id,omitempty"`
	CompanyID   string    `json:"company_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// DashboardStats are the counts shown on the dashboard. They are recomputed
// from full list fetches on every render, never cached.
type DashboardStats struct {
	Companies          int
	Users              int
	Collections        int
	PendingCollections int
}
