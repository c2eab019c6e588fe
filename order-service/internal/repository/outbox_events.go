package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOutboxEvent = `
INSERT INTO outbox_events (aggregate_id, event_name, payload)
VALUES ($1, $2, $3)
`

type CreateOutboxEventParams struct {
	AggregateID pgtype.UUID `json:"aggregateId"`
	EventName   string      `json:"eventName"`
	Payload     []byte      `json:"payload"`
}

func (q *Queries) CreateOutboxEvent(ctx context.Context, arg CreateOutboxEventParams) error {
	_, err := q.db.Exec(ctx, createOutboxEvent, arg.AggregateID, arg.EventName, arg.Payload)
	return err
}

const getUnpublishedOutboxEvents = `
SELECT id, aggregate_id, event_name, payload, published, created_at FROM outbox_events
WHERE published = FALSE
ORDER BY created_at
LIMIT $1
`

func (q *Queries) GetUnpublishedOutboxEvents(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := q.db.Query(ctx, getUnpublishedOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.EventName, &e.Payload, &e.Published, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const markOutboxEventPublished = `
UPDATE outbox_events SET published = TRUE
WHERE id = $1
`

func (q *Queries) MarkOutboxEventPublished(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, markOutboxEventPublished, id)
	return err
}
