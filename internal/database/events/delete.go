package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/crm-calendar/internal/database"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	tag, err := r.db.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
