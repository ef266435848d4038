package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestChannelDispatcher_DropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewChannelDispatcher(NewMockCommentNotifier(ctrl), 1)
	ctx := context.Background()

	assert.NoError(t, d.PublishCommentCreated(ctx, models.CommentCreatedEvent{CommentID: 1}))
	assert.ErrorIs(t, d.PublishCommentCreated(ctx, models.CommentCreatedEvent{CommentID: 2}), ErrQueueFull)
}

func TestChannelDispatcher_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := NewMockCommentNotifier(ctrl)
	d := NewChannelDispatcher(notifier, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	delivered := make(chan int64, 2)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int64) error {
		delivered <- id
		if id == 1 {
			return errors.New("smtp down")
		}
		return nil
	}).Times(2)

	assert.NoError(t, d.PublishCommentCreated(ctx, models.CommentCreatedEvent{CommentID: 1}))
	assert.NoError(t, d.PublishCommentCreated(ctx, models.CommentCreatedEvent{CommentID: 2}))

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	for _, want := range []int64{1, 2} {
		select {
		case got := <-delivered:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("event %d not delivered", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
