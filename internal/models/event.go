package models

// Activity entities
const (
	EntityUserBook          = "UserBook"
	EntityBookChangeRequest = "BookChangeRequest"
)

// Activity actions
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionSubmitted = "submitted"
	ActionApproved  = "approved"
	ActionDenied    = "denied"
)

// ActivityEvent is published to Kafka after a successful write.
type ActivityEvent struct {
	EventID   string `json:"eventId"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"userId"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	EntityID  string `json:"entityId"`
}
