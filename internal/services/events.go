package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the transaction carried by ctx commits.
type CommitHook func(ctx context.Context, fn func())

// ActivityPublisher sends activity events to Kafka. A nil writer disables publishing.
type ActivityPublisher struct {
	writer      KafkaWriter
	afterCommit CommitHook
}

// NewActivityPublisher creates a publisher. writer may be nil. With a non-nil
// afterCommit, events wait for the request transaction and are dropped when it
// rolls back; without one they are sent right away.
func NewActivityPublisher(writer KafkaWriter, afterCommit CommitHook) *ActivityPublisher {
	return &ActivityPublisher{writer: writer, afterCommit: afterCommit}
}

// Publish is best effort: failures are logged and never returned.
func (p *ActivityPublisher) Publish(ctx context.Context, userID, entity, action, entityID string) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "entity", entity, "entity_id", entityID)
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID),
		Value: data,
	}

	if p.afterCommit == nil {
		p.write(ctx, event, msg)
		return
	}
	p.afterCommit(ctx, func() { p.write(ctx, event, msg) })
}

func (p *ActivityPublisher) write(ctx context.Context, event models.ActivityEvent, msg kafka.Message) {
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Activity event published", "event_id", event.EventID, "entity", event.Entity, "action", event.Action)
	}
}
