package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cabwise/config"
	"cabwise/infras/otel"
	"cabwise/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const (
	otelAttrRecipient = "mail.recipient"
	otelAttrSubject   = "mail.subject"
)

// Mailer sends HTML mail through the agency's SMTP account.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	var dialer *gomail.Dialer
	if cfg.External.SMTP.Enable {
		dialer = gomail.NewDialer(
			cfg.External.SMTP.Host,
			cfg.External.SMTP.Port,
			cfg.External.SMTP.Username,
			cfg.External.SMTP.Password,
		)
	}

	return &mailerImpl{
		dialer: dialer,
		cfg:    cfg,
		otel:   ot,
	}
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mail.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if m.dialer == nil {
		log.Warn().Str("to", to).Msg("SMTP disabled, skipping mail delivery")

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.External.SMTP.From, m.cfg.External.SMTP.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
