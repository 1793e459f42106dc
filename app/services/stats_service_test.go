package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/app/services"
	"bistro/pkg/apperr"
)

type counterStub struct {
	n   int64
	err error
}

func (c counterStub) EstimatedCount(context.Context) (int64, error) { return c.n, c.err }

type revenueStub struct {
	counterStub
	revenue float64
	revErr  error
}

func (r revenueStub) TotalRevenue(context.Context) (float64, error) { return r.revenue, r.revErr }

func TestSnapshotAggregates(t *testing.T) {
	svc := services.NewStatsService(
		counterStub{n: 12},
		counterStub{n: 34},
		revenueStub{counterStub: counterStub{n: 5}, revenue: 199.75},
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), snap.Users)
	assert.Equal(t, int64(34), snap.MenuItems)
	assert.Equal(t, int64(5), snap.Orders)
	assert.Equal(t, 199.75, snap.Revenue)
}

func TestSnapshotEmptyStoreHasZeroRevenue(t *testing.T) {
	svc := services.NewStatsService(
		counterStub{},
		counterStub{},
		revenueStub{},
	)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Revenue, "no payments means revenue 0, not an error")
	assert.Zero(t, snap.Orders)
}

func TestSnapshotPropagatesCountError(t *testing.T) {
	svc := services.NewStatsService(
		counterStub{err: apperr.ErrPersistence},
		counterStub{},
		revenueStub{},
	)

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}

func TestSnapshotPropagatesRevenueError(t *testing.T) {
	svc := services.NewStatsService(
		counterStub{},
		counterStub{},
		revenueStub{revErr: apperr.ErrPersistence},
	)

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}
