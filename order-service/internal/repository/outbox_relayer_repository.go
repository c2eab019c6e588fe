package repository

import (
	"context"

	"github.com/hqvuong/microshop/shared/events"
)

// OutboxRelayerRepository adapts the outbox queries to what the shared
// relayer worker expects.
type OutboxRelayerRepository struct {
	queries *Queries
}

func NewOutboxRelayerRepository(db DBTX) *OutboxRelayerRepository {
	return &OutboxRelayerRepository{queries: New(db)}
}

func (r *OutboxRelayerRepository) GetUnpublishedOutboxEvents(ctx context.Context, limit int32) ([]events.OutboxEvent, error) {
	outboxEvents, err := r.queries.GetUnpublishedOutboxEvents(ctx, limit)
	if err != nil {
		return nil, err
	}

	var result []events.OutboxEvent
	for _, oe := range outboxEvents {
		result = append(result, events.OutboxEvent{
			ID:          oe.ID.String(),
			AggregateID: oe.AggregateID.String(),
			EventName:   oe.EventName,
			Payload:     oe.Payload,
		})
	}
	return result, nil
}

func (r *OutboxRelayerRepository) MarkOutboxEventPublished(ctx context.Context, eventID string) error {
	eventUUID, err := mapStringToPgUUID(eventID)
	if err != nil {
		return err
	}
	return r.queries.MarkOutboxEventPublished(ctx, eventUUID)
}
