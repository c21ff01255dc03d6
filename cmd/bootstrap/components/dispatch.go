package components

import (
	"log/slog"

	"salon-booking/internal/infra/dispatch"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var DispatchModule = fx.Module("dispatch",
	fx.Provide(
		NewCodeDispatcher,
	),
)

// NewCodeDispatcher falls back to the logging sender for any channel without credentials.
func NewCodeDispatcher(cfg config.Config, logger *slog.Logger) commands.CodeDispatcher {
	d := cfg.Dispatch

	var sms dispatch.Sender
	if d.TwilioAccountSID != "" && d.TwilioAuthToken != "" {
		sms = dispatch.NewTwilioSender(d.TwilioAccountSID, d.TwilioAuthToken, d.TwilioFrom, d.TwilioBaseURL, d.Timeout, logger)
	} else {
		logger.Warn("Twilio credentials missing; SMS codes will only be logged")
		sms = dispatch.NewLogSender("sms", logger)
	}

	var email dispatch.Sender
	if d.SendGridAPIKey != "" {
		email = dispatch.NewSendGridSender(d.SendGridAPIKey, d.EmailFrom, d.EmailFromName, logger)
	} else {
		logger.Warn("SendGrid API key missing; email codes will only be logged")
		email = dispatch.NewLogSender("email", logger)
	}

	return dispatch.NewRouter(sms, email, cfg.OTP.CodeTTL)
}
