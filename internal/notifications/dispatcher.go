package notifications

import (
	"context"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// ChannelDispatcher is an in-process event queue served by one worker.
type ChannelDispatcher struct {
	queue    chan models.CommentCreatedEvent
	notifier CommentNotifier
}

// NewChannelDispatcher creates a dispatcher buffering up to size events.
func NewChannelDispatcher(notifier CommentNotifier, size int) *ChannelDispatcher {
	if size <= 0 {
		size = 1
	}
	return &ChannelDispatcher{
		queue:    make(chan models.CommentCreatedEvent, size),
		notifier: notifier,
	}
}

// PublishCommentCreated enqueues the event without blocking. A full queue drops it.
func (d *ChannelDispatcher) PublishCommentCreated(ctx context.Context, event models.CommentCreatedEvent) error {
	select {
	case d.queue <- event:
		return nil
	default:
		logger.Log.Warnw("notification queue full, dropping event", "event_id", event.EventID, "comment_id", event.CommentID)
		return ErrQueueFull
	}
}

// Run delivers queued events until ctx is done.
func (d *ChannelDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-d.queue:
			if err := d.notifier.Notify(ctx, event.CommentID); err != nil {
				logger.Log.Warnw("comment notification failed", "event_id", event.EventID, "comment_id", event.CommentID, "err", err)
			}
		}
	}
}
