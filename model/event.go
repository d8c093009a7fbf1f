package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
)

// RecordEvent is published after a product or user row changes.
type RecordEvent struct {
	Entity     constant.EventEntity `json:"entity"`
	Action     constant.EventAction `json:"action"`
	Key        string               `json:"key"`
	OccurredAt time.Time            `json:"occurred_at"`
}
