package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wastedesk/internal/models"
)

type fakeLister struct {
	companies   []models.Company
	users       []models.UserProfile
	collections []models.Collection

	companiesErr   error
	usersErr       error
	collectionsErr error
}

func (f *fakeLister) Companies(ctx context.Context) ([]models.Company, error) {
	return f.companies, f.companiesErr
}

func (f *fakeLister) Users(ctx context.Context) ([]models.UserProfile, error) {
	return f.users, f.usersErr
}

func (f *fakeLister) Collections(ctx context.Context) ([]models.Collection, error) {
	return f.collections, f.collectionsErr
}

func TestAggregatorStats(t *testing.T) {
	lister := &fakeLister{
		companies: []models.Company{{ID: "a"}, {ID: "b"}},
		users:     []models.UserProfile{{ID: "c"}},
		collections: []models.Collection{
			{Status: models.StatusPending},
			{Status: models.StatusCompleted},
			{Status: models.StatusPending},
		},
	}
	agg := NewAggregator(lister, zap.NewNop())

	stats, err := agg.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{
		Companies:          2,
		Users:              1,
		Collections:        3,
		PendingCollections: 2,
	}, stats)
}

func TestAggregatorAllOrNothing(t *testing.T) {
	// A single failed fetch fails the whole aggregation; the two successful
	// fetches must not leak into partial counts.
	tests := []struct {
		name   string
		mutate func(*fakeLister)
	}{
		{name: "companies fail", mutate: func(f *fakeLister) { f.companiesErr = errors.New("boom") }},
		{name: "users fail", mutate: func(f *fakeLister) { f.usersErr = errors.New("boom") }},
		{name: "collections fail", mutate: func(f *fakeLister) { f.collectionsErr = errors.New("boom") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{
				companies:   []models.Company{{ID: "a"}, {ID: "b"}},
				users:       []models.UserProfile{{ID: "c"}},
				collections: []models.Collection{{Status: models.StatusPending}},
			}
			tt.mutate(lister)
			agg := NewAggregator(lister, zap.NewNop())

			stats, err := agg.Stats(context.Background())
			require.Error(t, err)
			assert.Equal(t, models.DashboardStats{}, stats)
		})
	}
}

func TestAggregatorEmptyLists(t *testing.T) {
	agg := NewAggregator(&fakeLister{}, zap.NewNop())

	stats, err := agg.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, stats)
}
