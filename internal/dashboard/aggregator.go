// Package dashboard assembles the summary counts shown on the console's
// dashboard view.
package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wastedesk/internal/models"
)

// Lister is the read-only slice of the API the aggregator needs.
type Lister interface {
	Companies(ctx context.Context) ([]models.Company, error)
	Users(ctx context.Context) ([]models.UserProfile, error)
	Collections(ctx context.Context) ([]models.Collection, error)
}

// Aggregator computes dashboard statistics from three independent list
// fetches issued concurrently.
type Aggregator struct {
	api    Lister
	logger *zap.Logger
}

// NewAggregator creates a dashboard aggregator.
func NewAggregator(api Lister, logger *zap.Logger) *Aggregator {
	return &Aggregator{api: api, logger: logger}
}

// Stats fetches companies, users, and collections in parallel and derives
// the counts. The join is all-or-nothing: if any fetch fails the whole call
// fails and no partial counts are reported; the first failure cancels the
// remaining fetches.
func (a *Aggregator) Stats(ctx context.Context) (models.DashboardStats, error) {
	var (
		companies   []models.Company
		users       []models.UserProfile
		collections []models.Collection
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		companies, err = a.api.Companies(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = a.api.Users(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		collections, err = a.api.Collections(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.logger.Error("Failed to aggregate dashboard stats", zap.Error(err))
		return models.DashboardStats{}, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}

	pending := 0
	for _, collection := range collections {
		if collection.Status == models.StatusPending {
			pending++
		}
	}

	return models.DashboardStats{
		Companies:          len(companies),
		Users:              len(users),
		Collections:        len(collections),
		PendingCollections: pending,
	}, nil
}
