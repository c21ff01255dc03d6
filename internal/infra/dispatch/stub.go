package dispatch

import (
	"context"
	"log/slog"
	"sync"
)

// LogSender writes messages to the log instead of delivering them. It is used when no
// provider credentials are configured, and it remembers the last message per recipient.
type LogSender struct {
	channel string
	logger  *slog.Logger

	mu   sync.Mutex
	last map[string]string
}

func NewLogSender(channel string, logger *slog.Logger) *LogSender {
	return &LogSender{
		channel: channel,
		logger:  logger,
		last:    make(map[string]string),
	}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	s.last[to] = body
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "stub sender: message not delivered",
		"channel", s.channel, "subject", subject, "body", body)
	return nil
}

// Last returns the most recent body sent to the recipient.
func (s *LogSender) Last(to string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.last[to]
	return body, ok
}
