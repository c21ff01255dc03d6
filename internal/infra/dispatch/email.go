package dispatch

import (
	"context"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"salon-booking/internal/pkg/errs"
)

const sendGridMailEndpoint = "/v3/mail/send"

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

func NewSendGridSender(apiKey, fromEmail, fromName string, logger *slog.Logger) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// NewSendGridSenderWithHost points the client at another API host, such as a local test server.
func NewSendGridSenderWithHost(apiKey, host, fromEmail, fromName string, logger *slog.Logger) *SendGridSender {
	request := sendgrid.GetRequest(apiKey, sendGridMailEndpoint, host)
	request.Method = "POST"
	return &SendGridSender{
		client:    &sendgrid.Client{Request: request},
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errs.New("dispatch: recipient required")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, "")

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.ErrorContext(ctx, "sendgrid send failed", "error", err.Error())
		return errs.Wrap(err, "dispatch: sendgrid send failed")
	}
	if response.StatusCode >= 400 {
		s.logger.ErrorContext(ctx, "sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return errs.Newf("dispatch: sendgrid returned status %d", response.StatusCode)
	}

	s.logger.InfoContext(ctx, "email sent via sendgrid", "status", response.StatusCode)
	return nil
}
