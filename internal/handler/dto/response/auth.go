package response

import (
	"time"

	"salon-booking/internal/usecase/commands"
)

type RequestCodeResponse struct {
	Identifier        string    `json:"identifier"`
	Channel           string    `json:"channel"`
	Destination       string    `json:"destination"`
	ExpiresAt         time.Time `json:"expiresAt"`
	RetryAfterSeconds int       `json:"retryAfterSeconds"`
}

func FromRequestCodeResult(r *commands.RequestCodeResult) *RequestCodeResponse {
	return &RequestCodeResponse{
		Identifier:        r.Identifier,
		Channel:           r.Channel.String(),
		Destination:       r.Destination,
		ExpiresAt:         r.ExpiresAt,
		RetryAfterSeconds: CeilSeconds(r.RetryAfter),
	}
}

type VerifyCodeResponse struct {
	Identity    string    `json:"identity"`
	Channel     string    `json:"channel"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromVerifyResult(r *commands.VerifyResult) *VerifyCodeResponse {
	return &VerifyCodeResponse{
		Identity:    r.Identity,
		Channel:     r.Channel.String(),
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt,
	}
}

type ResendStatusResponse struct {
	CanResend         bool `json:"canResend"`
	RetryAfterSeconds int  `json:"retryAfterSeconds"`
}

func FromResendStatus(s *commands.ResendStatus) *ResendStatusResponse {
	return &ResendStatusResponse{
		CanResend:         s.CanResend,
		RetryAfterSeconds: CeilSeconds(s.RetryAfter),
	}
}

// CeilSeconds rounds a wait up to whole seconds, as Retry-After expects.
func CeilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
