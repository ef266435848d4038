package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=notifications

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaReader defines a Kafka consumer group reader abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)         // Blocks until the next message
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error // Marks messages as processed
	Close() error                                                    // Leaves the group
}

// KafkaPublisher publishes comment events to Kafka.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishCommentCreated writes the event keyed by comment id.
func (p *KafkaPublisher) PublishCommentCreated(ctx context.Context, event models.CommentCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal comment event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CommentID, 10)),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write comment event: %w", err)
	}

	logger.Log.Infow("comment event published to Kafka", "event_id", event.EventID, "comment_id", event.CommentID)
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Consumer reads comment events from Kafka and runs the notifier for each.
type Consumer struct {
	reader   KafkaReader
	notifier CommentNotifier
}

// NewConsumer creates a new Consumer.
func NewConsumer(reader KafkaReader, notifier CommentNotifier) *Consumer {
	return &Consumer{reader: reader, notifier: notifier}
}

// Run consumes until ctx is done or the reader is closed.
// Notification failures are logged and the message is committed anyway; there is no retry.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("fetch comment event: %w", err)
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit comment event: %w", err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	var event models.CommentCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.Log.Errorw("malformed comment event", "offset", msg.Offset, "partition", msg.Partition, "err", err)
		return
	}

	if err := c.notifier.Notify(ctx, event.CommentID); err != nil {
		logger.Log.Warnw("comment notification failed", "event_id", event.EventID, "comment_id", event.CommentID, "err", err)
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
