package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_PublishCommentCreated(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	publisher := NewKafkaPublisher(writer)
	event := models.CommentCreatedEvent{EventID: "e1", CommentID: 42, PostID: 7, CommenterID: "u1", Timestamp: 100}

	writer.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, "42", string(msgs[0].Key))

		var got models.CommentCreatedEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
		assert.Equal(t, event, got)
		return nil
	})
	assert.NoError(t, publisher.PublishCommentCreated(ctx, event))

	brokerErr := errors.New("broker down")
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(brokerErr)
	assert.ErrorIs(t, publisher.PublishCommentCreated(ctx, event), brokerErr)

	writer.EXPECT().Close().Return(nil)
	assert.NoError(t, publisher.Close())
}

func eventMessage(t *testing.T, commentID int64) kafka.Message {
	data, err := json.Marshal(models.CommentCreatedEvent{EventID: "e", CommentID: commentID})
	require.NoError(t, err)
	return kafka.Message{Value: data}
}

func TestConsumer_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies and commits until reader closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockKafkaReader(ctrl)
		notifier := NewMockCommentNotifier(ctrl)
		msg := eventMessage(t, 5)

		gomock.InOrder(
			reader.EXPECT().FetchMessage(ctx).Return(msg, nil),
			notifier.EXPECT().Notify(ctx, int64(5)).Return(nil),
			reader.EXPECT().CommitMessages(ctx, msg).Return(nil),
			reader.EXPECT().FetchMessage(ctx).Return(kafka.Message{}, io.EOF),
		)

		assert.NoError(t, NewConsumer(reader, notifier).Run(ctx))
	})

	t.Run("failed notification is still committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockKafkaReader(ctrl)
		notifier := NewMockCommentNotifier(ctrl)
		msg := eventMessage(t, 6)

		gomock.InOrder(
			reader.EXPECT().FetchMessage(ctx).Return(msg, nil),
			notifier.EXPECT().Notify(ctx, int64(6)).Return(errors.New("smtp down")),
			reader.EXPECT().CommitMessages(ctx, msg).Return(nil),
			reader.EXPECT().FetchMessage(ctx).Return(kafka.Message{}, io.EOF),
		)

		assert.NoError(t, NewConsumer(reader, notifier).Run(ctx))
	})

	t.Run("malformed message is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockKafkaReader(ctrl)
		notifier := NewMockCommentNotifier(ctrl)
		msg := kafka.Message{Value: []byte("{not json")}

		gomock.InOrder(
			reader.EXPECT().FetchMessage(ctx).Return(msg, nil),
			reader.EXPECT().CommitMessages(ctx, msg).Return(nil),
			reader.EXPECT().FetchMessage(ctx).Return(kafka.Message{}, io.EOF),
		)

		assert.NoError(t, NewConsumer(reader, notifier).Run(ctx))
	})

	t.Run("cancelled context stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockKafkaReader(ctrl)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		reader.EXPECT().FetchMessage(cctx).Return(kafka.Message{}, context.Canceled)
		assert.NoError(t, NewConsumer(reader, NewMockCommentNotifier(ctrl)).Run(cctx))
	})

	t.Run("fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockKafkaReader(ctrl)
		fetchErr := errors.New("group coordinator unavailable")

		reader.EXPECT().FetchMessage(ctx).Return(kafka.Message{}, fetchErr)
		assert.ErrorIs(t, NewConsumer(reader, NewMockCommentNotifier(ctrl)).Run(ctx), fetchErr)
	})
}
