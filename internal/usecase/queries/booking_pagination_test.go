//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ticket-booking/internal/usecase/queries"
	queriesmock "ticket-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listItems(n int, base time.Time) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, n)
	for i := range items {
		items[i] = &queries.BookingListItem{
			ID:        uuid.New(),
			Status:    "pending",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestBookingList(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full page yields a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		rows := listItems(3, base)
		// One extra row is fetched to detect the next page.
		store.EXPECT().
			FindPage(gomock.Any(), queries.BookingFilter{}, nil, nil, int32(3)).
			Return(rows, nil)

		got, next, err := q.List(ctx, queries.BookingFilter{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		// The cursor points at the last returned row.
		cursorTime, cursorID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, cursorID)
		assert.Equal(t, rows[1].CreatedAt.UnixMicro(), cursorTime.UnixMicro())
	})

	t.Run("short page has no next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		store.EXPECT().
			FindPage(gomock.Any(), queries.BookingFilter{}, nil, nil, int32(21)).
			Return(listItems(4, base), nil)

		got, next, err := q.List(ctx, queries.BookingFilter{}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Nil(t, next)
	})

	t.Run("cursor is decoded and forwarded to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		afterID := uuid.New()
		after := &queries.Cursor{After: queries.EncodeAfterCursor(base, afterID)}

		store.EXPECT().
			FindPage(gomock.Any(), queries.BookingFilter{}, gomock.Any(), gomock.Any(), int32(11)).
			DoAndReturn(func(_ context.Context, _ queries.BookingFilter, afterCreated *time.Time, gotID *uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
				require.NotNil(t, afterCreated)
				require.NotNil(t, gotID)
				assert.Equal(t, base.UnixMicro(), afterCreated.UnixMicro())
				assert.Equal(t, afterID, *gotID)
				return nil, nil
			})

		_, next, err := q.List(ctx, queries.BookingFilter{}, after, 10)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is rejected without hitting the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		q := queries.NewBookingQueries(store)

		_, _, err := q.List(ctx, queries.BookingFilter{}, &queries.Cursor{After: "garbage"}, 10)
		assert.Error(t, err)
	})
}

func TestBookingSearchCapsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)

	store.EXPECT().
		FindByNameQuery(gomock.Any(), "jazz", int32(queries.MaxListLimit)).
		Return(nil, nil)

	_, err := q.Search(context.Background(), "jazz", 10_000)
	require.NoError(t, err)
}
