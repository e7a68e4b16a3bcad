package queries

import "context"

type StatsQueries interface {
	Overview(ctx context.Context) (*StatsView, error)
}

type StatsReadStore interface {
	Overview(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

func (q *statsQueriesImpl) Overview(ctx context.Context) (*StatsView, error) {
	return q.store.Overview(ctx)
}
