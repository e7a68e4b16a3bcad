// Package readstore holds the query-side repositories. They read through the
// pgx pool directly; the write path owns transactional consistency and reads
// here are plain committed-state queries.
package readstore

import (
	"errors"

	"ticket-booking/internal/infra"

	"github.com/jackc/pgx/v5"
)

func wrapQueryErr(entity string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to read "+entity, err)
}
