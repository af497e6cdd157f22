package events

import "time"

const FundTransactionRecordedTopic = "pharmacy.fund.transaction.v1"

type FundTransactionRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	BalanceAfter  string    `json:"balance_after"`
	Performer     string    `json:"performer"`
	OccurredAt    time.Time `json:"occurred_at"`
}
