// Package notifications moves "comment created" events from the request path to the notifier.
//
// Two transports are provided: Kafka (KafkaPublisher + Consumer) and an in-process
// buffered queue (ChannelDispatcher). Both deliver to a CommentNotifier.
package notifications

import (
	"context"
	"errors"
)

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=notifications

// ErrQueueFull is returned by ChannelDispatcher when the event was dropped.
var ErrQueueFull = errors.New("notification queue full")

// CommentNotifier delivers the notification for a stored comment.
type CommentNotifier interface {
	Notify(ctx context.Context, commentID int64) error
}
