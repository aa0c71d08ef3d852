package events

import (
	"context"
	"fmt"
)

const schema = `
create table if not exists calendar_events (
	seq         bigserial,
	id          text primary key,
	title       text not null,
	event_date  text not null,
	event_time  text not null,
	email       text not null,
	color       text not null,
	description text not null default ''
)`

// Migrate creates the events table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecRaw(ctx, schema); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}

	return nil
}
