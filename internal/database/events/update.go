package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/crm-calendar/internal/database"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
)

func (r *Repository) UpdateEvent(ctx context.Context, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(eventColumns(event)).
		Where(sq.Eq{"id": event.ID})

	tag, err := r.db.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
