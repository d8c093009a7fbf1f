package constant

type EventEntity string

const (
	EntityProduct EventEntity = "product"
	EntityUser    EventEntity = "user"
)

type EventAction string

const (
	ActionCreated EventAction = "created"
	ActionUpdated EventAction = "updated"
	ActionDeleted EventAction = "deleted"
)

// RecordEventsExchange is the fanout exchange record changes are published to.
const RecordEventsExchange = "record_events"
