package events

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/jackc/pgx/v4"
)

func (r *Repository) GetEventByID(ctx context.Context, id string) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &eventDTO{}
	if err := r.db.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

func (r *Repository) GetEvents(ctx context.Context) ([]*model.Event, error) {
	var dtos []*eventDTO
	if err := r.db.Select(ctx, &dtos, baseQuery); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
