package events

// OutboxEvent is a pending message persisted in the same transaction as the
// state change it describes. A relayer worker moves it to the broker later.
type OutboxEvent struct {
	ID          string `json:"id"`
	AggregateID string `json:"aggregateId"`
	EventName   string `json:"eventName"`
	Payload     []byte `json:"payload"`
}
