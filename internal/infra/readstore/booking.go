package readstore

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

const bookingViewSQL = `
	SELECT b.id, b.event_id, e.name, b.ticket_type_id, tt.name,
	       b.user_name, b.user_email, b.quantity,
	       b.unit_price_cents, b.total_price_cents, b.status,
	       b.confirmation_code, b.created_at, b.updated_at
	FROM bookings b
	JOIN events e ON e.id = b.event_id
	JOIN ticket_types tt ON tt.id = b.ticket_type_id`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, bookingViewSQL+` WHERE b.id = $1`, id)
	return scanBookingView(row)
}

func (s *BookingReadStore) FindByConfirmationCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, bookingViewSQL+` WHERE b.confirmation_code = $1`, code)
	return scanBookingView(row)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.EventID, &v.EventName, &v.TicketTypeID, &v.TicketTypeName,
		&v.UserName, &v.UserEmail, &v.Quantity,
		&v.UnitPriceCents, &v.TotalPriceCents, &v.Status,
		&v.ConfirmationCode, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("booking", err)
	}
	return &v, nil
}

// FindPage does keyset pagination on (created_at, id) descending. The filter
// and cursor predicates are appended positionally to keep the query planner
// on the composite index.
func (s *BookingReadStore) FindPage(
	ctx context.Context,
	filter queries.BookingFilter,
	afterCreated *time.Time,
	afterID *uuid.UUID,
	limit int32,
) ([]*queries.BookingListItem, error) {
	sql := `
		SELECT b.id, e.name, tt.name, b.user_email, b.quantity,
		       b.total_price_cents, b.status, b.confirmation_code, b.created_at
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		JOIN ticket_types tt ON tt.id = b.ticket_type_id
		WHERE 1=1`
	args := []any{}

	if filter.EventID != uuid.Nil {
		args = append(args, filter.EventID)
		sql += fmt.Sprintf(" AND b.event_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		sql += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		sql += fmt.Sprintf(" AND b.user_email = $%d", len(args))
	}
	if afterCreated != nil && afterID != nil {
		args = append(args, *afterCreated, *afterID)
		sql += fmt.Sprintf(" AND (b.created_at, b.id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY b.created_at DESC, b.id DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

const bookingSearchSQL = `
	SELECT b.id, e.name, tt.name, b.user_email, b.quantity,
	       b.total_price_cents, b.status, b.confirmation_code, b.created_at
	FROM bookings b
	JOIN events e ON e.id = b.event_id
	JOIN venues v ON v.id = e.venue_id
	JOIN ticket_types tt ON tt.id = b.ticket_type_id
	WHERE e.name ILIKE $1 OR v.name ILIKE $1 OR tt.name ILIKE $1
	ORDER BY b.created_at DESC, b.id DESC
	LIMIT $2`

func (s *BookingReadStore) FindByNameQuery(ctx context.Context, nameQuery string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx, bookingSearchSQL, "%"+nameQuery+"%", limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.EventName, &item.TicketTypeName, &item.UserEmail,
			&item.Quantity, &item.TotalPriceCents, &item.Status,
			&item.ConfirmationCode, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
