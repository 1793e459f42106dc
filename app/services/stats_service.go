package services

import (
	"context"

	"bistro/app/models"
)

// Counter exposes the cheap collection-size estimate of a store.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

// RevenueSource counts orders and sums their totals.
type RevenueSource interface {
	Counter
	TotalRevenue(ctx context.Context) (float64, error)
}

// StatsService assembles the admin dashboard snapshot.
type StatsService struct {
	users    Counter
	menu     Counter
	payments RevenueSource
}

func NewStatsService(users, menu Counter, payments RevenueSource) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// Snapshot returns current counts and total revenue. Counts use the
// collection metadata estimate, so they may trail recent writes slightly;
// revenue is aggregated from the payment records and is 0 when none exist.
func (s *StatsService) Snapshot(ctx context.Context) (models.StatsSnapshot, error) {
	var snap models.StatsSnapshot
	var err error

	if snap.Users, err = s.users.EstimatedCount(ctx); err != nil {
		return models.StatsSnapshot{}, err
	}
	if snap.MenuItems, err = s.menu.EstimatedCount(ctx); err != nil {
		return models.StatsSnapshot{}, err
	}
	if snap.Orders, err = s.payments.EstimatedCount(ctx); err != nil {
		return models.StatsSnapshot{}, err
	}
	if snap.Revenue, err = s.payments.TotalRevenue(ctx); err != nil {
		return models.StatsSnapshot{}, err
	}
	return snap, nil
}
