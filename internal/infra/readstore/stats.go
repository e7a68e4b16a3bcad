package readstore

import (
	"context"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsReadStore struct {
	pool *pgxpool.Pool
}

func NewStatsReadStore(pool *pgxpool.Pool) queries.StatsReadStore {
	return &StatsReadStore{pool: pool}
}

var _ queries.StatsReadStore = (*StatsReadStore)(nil)

// Revenue counts confirmed bookings only; pending holds are not money yet
// and cancelled bookings never were.
const statsOverviewSQL = `
	SELECT
		(SELECT COUNT(*) FROM venues),
		(SELECT COUNT(*) FROM events),
		(SELECT COUNT(*) FROM bookings),
		(SELECT COALESCE(SUM(total_price_cents), 0) FROM bookings WHERE status = 'confirmed'),
		(SELECT COALESCE(SUM(capacity - committed), 0) FROM ticket_types),
		(SELECT COALESCE(SUM(committed), 0) FROM ticket_types)`

func (s *StatsReadStore) Overview(ctx context.Context) (*queries.StatsView, error) {
	var v queries.StatsView
	err := s.pool.QueryRow(ctx, statsOverviewSQL).Scan(
		&v.Venues, &v.Events, &v.Bookings,
		&v.ConfirmedRevenueCents, &v.TicketsAvailable, &v.TicketsCommitted,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read stats", err)
	}
	return &v, nil
}
