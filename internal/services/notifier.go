package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// NotificationService mails post authors about new comments.
type NotificationService struct {
	comments  CommentReader
	mailer    Mailer
	publicURL string
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(comments CommentReader, mailer Mailer, publicURL string) *NotificationService {
	return &NotificationService{
		comments:  comments,
		mailer:    mailer,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Notify emails the author of the post the comment belongs to.
func (svc *NotificationService) Notify(ctx context.Context, commentID int64) error {
	comment, err := svc.comments.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Warnw("comment for notification not loaded", "comment_id", commentID, "err", err)
		return fmt.Errorf("load comment %d: %w", commentID, err)
	}

	email := commentEmail(comment, svc.publicURL)
	if err := svc.mailer.Send(ctx, email); err != nil {
		logger.Log.Errorw("failed to send comment notification", "comment_id", commentID, "to", email.To, "err", err)
		return fmt.Errorf("send notification: %w", err)
	}

	logger.Log.Infow("comment notification sent", "comment_id", commentID, "to", email.To)
	return nil
}

func commentEmail(c *models.CommentDetail, publicURL string) models.Email {
	body := fmt.Sprintf("Hello %s,\n\n"+
		"%s has commented on your post \"%s\":\n\n"+
		"\"%s\"\n\n"+
		"You can view the post and all comments at: %s/api/posts/%d/\n\n"+
		"Best regards,\n"+
		"Blog App Team",
		c.PostAuthor.DisplayName(), c.Commenter.DisplayName(), c.PostTitle, c.Text, publicURL, c.PostID)

	return models.Email{
		To:      []string{c.PostAuthor.Email},
		Subject: "New comment on your post: " + c.PostTitle,
		Body:    body,
	}
}
