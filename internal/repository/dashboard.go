package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

type DashboardRepo struct {
	conn
}

func NewDashboardRepo(db *sqlx.DB) *DashboardRepo {
	return &DashboardRepo{conn: newConn(db)}
}

func (r *DashboardRepo) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	var s entities.DashboardStats
	err := r.tr(ctx).GetContext(ctx, &s, `
		SELECT
			(SELECT COUNT(*) FROM tour_packages) AS total_packages,
			(SELECT COUNT(*) FROM tour_packages WHERE active) AS active_packages,
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COUNT(*) FROM events WHERE active) AS active_events,
			(SELECT COUNT(*) FROM bookings) AS total_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending') AS pending_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'confirmed') AS confirmed_bookings,
			(SELECT COUNT(*) FROM contact_queries) AS total_queries,
			(SELECT COUNT(*) FROM contact_queries WHERE status = 'new') AS new_queries,
			(SELECT COUNT(*) FROM contact_queries WHERE priority = 'urgent') AS urgent_queries,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM newsletters WHERE subscribed) AS newsletter_subscribers`)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return &s, nil
}
