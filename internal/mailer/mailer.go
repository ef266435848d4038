// Package mailer sends plain-text emails.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

var ErrNoRecipients = errors.New("email has no recipients")

// Sender delivers prepared messages; *mail.Client implements it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	from    string
	timeout time.Duration
	client  Sender
}

// NewSMTPMailer creates a mailer for host:port. Empty username disables authentication.
// Every send, including dial and relay IO, is bounded by timeout.
func NewSMTPMailer(host string, port int, username, password, from string, timeout time.Duration) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithDialContextFunc(deadlineDialer(timeout)),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return NewSMTPMailerWithSender(client, from, timeout), nil
}

// NewSMTPMailerWithSender creates a mailer on top of an existing sender.
func NewSMTPMailerWithSender(client Sender, from string, timeout time.Duration) *SMTPMailer {
	return &SMTPMailer{from: from, timeout: timeout, client: client}
}

// deadlineDialer sets a deadline on the whole connection so a relay that accepts
// but never answers cannot stall the session.
func deadlineDialer(timeout time.Duration) mail.DialContextFunc {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := (&net.Dialer{Timeout: timeout}).DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

// Send delivers email within the mailer timeout or until ctx is done.
func (m *SMTPMailer) Send(ctx context.Context, email models.Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := newMessage(m.from, email)
	if err != nil {
		return err
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", strings.Join(email.To, ","), err)
	}

	logger.Log.Infow("email sent", "to", email.To, "subject", email.Subject)
	return nil
}

func newMessage(from string, email models.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(sanitizeHeader(email.Subject))
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, email.Body)
	return msg, nil
}

// sanitizeHeader keeps user-controlled text (post titles) from injecting headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogMailer writes emails to the log instead of sending them.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs email.
func (LogMailer) Send(ctx context.Context, email models.Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipients
	}
	logger.Log.Infow("email", "to", email.To, "subject", email.Subject, "body", email.Body)
	return nil
}
