package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/crm-calendar/internal/database"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/jackc/pgconn"
)

func (r *Repository) CreateEvent(ctx context.Context, event *model.Event) error {
	columns := eventColumns(event)
	columns["id"] = event.ID

	qb := database.PSQL.
		Insert(database.EventsTable).
		SetMap(columns)

	if _, err := r.db.Exec(ctx, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
