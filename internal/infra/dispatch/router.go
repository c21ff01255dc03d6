package dispatch

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/errs"
)

var ErrUnsupportedChannel = errs.New("dispatch: unsupported channel")

// Sender delivers one plain-text message to a single address.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Router picks the sender that matches the identifier's channel.
type Router struct {
	sms     Sender
	email   Sender
	codeTTL time.Duration
}

func NewRouter(sms, email Sender, codeTTL time.Duration) *Router {
	return &Router{
		sms:     sms,
		email:   email,
		codeTTL: codeTTL,
	}
}

func (r *Router) Send(ctx context.Context, identifier auth.Identifier, code string) error {
	subject, body := r.compose(code)
	switch identifier.Channel() {
	case auth.ChannelPhone:
		return r.sms.Send(ctx, identifier.Value(), subject, body)
	case auth.ChannelEmail:
		return r.email.Send(ctx, identifier.Value(), subject, body)
	default:
		return errs.Wrapf(ErrUnsupportedChannel, "channel %q", identifier.Channel())
	}
}

func (r *Router) compose(code string) (subject, body string) {
	minutes := int(r.codeTTL.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	subject = "Your verification code"
	body = fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes)
	return subject, body
}
