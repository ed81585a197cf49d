// Package mailer dispatches composed notifications over SMTP. The transport
// sits behind an interface so services can be tested with a fake, and behind
// a circuit breaker so a throttling relay fails fast instead of piling up
// connections.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/notify"
	"github.com/profefranko/profefranko-api/pkg/circuitbreaker"
	apperrors "github.com/profefranko/profefranko-api/pkg/errors"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"github.com/profefranko/profefranko-api/pkg/metrics"
)

// Mailer delivers a composed notification to the promoter.
type Mailer interface {
	Send(ctx context.Context, msg *notify.Message) error
}

// SMTPMailer sends mail through the site's SMTP account with go-mail.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	to     string

	breaker *gobreaker.CircuitBreaker
}

// NewSMTPMailer builds the production mailer. Port 465 uses implicit TLS,
// anything else negotiates STARTTLS opportunistically, matching how the
// site's mail account is provisioned.
func NewSMTPMailer(smtpCfg config.SMTPConfig, mailCfg config.MailConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(smtpCfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtpCfg.User),
		gomail.WithPassword(smtpCfg.Password),
		gomail.WithTimeout(30 * time.Second),
	}
	if smtpCfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(smtpCfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:  client,
		from:    mailCfg.From,
		to:      mailCfg.To,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.SMTPConfig()),
	}, nil
}

// Send dispatches the message as a single transaction: the relay either
// accepts the whole mail (bodies plus attachments) or the send fails. There
// is no partial delivery and no automatic retry.
func (m *SMTPMailer) Send(ctx context.Context, msg *notify.Message) error {
	start := time.Now()

	mail, err := m.buildMail(msg)
	if err != nil {
		return apperrors.DispatchError(err)
	}

	_, err = circuitbreaker.Execute(m.breaker, func() (struct{}, error) {
		return struct{}{}, m.client.DialAndSendWithContext(ctx, mail)
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		logger.LogAPICall("smtp", "send", "error", duration,
			zap.Error(err),
			zap.String("subject", msg.Subject))
		return apperrors.DispatchError(circuitbreaker.FormatError(m.breaker.Name(), err))
	}

	logger.LogAPICall("smtp", "send", "success", duration,
		zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) buildMail(msg *notify.Message) (*gomail.Msg, error) {
	mail := gomail.NewMsg()

	if err := mail.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := mail.To(m.to); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := mail.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}

	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextPlain, msg.Text)
	mail.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)

	if err := mail.AttachReader(msg.PDF.Filename, bytes.NewReader(msg.PDF.Content)); err != nil {
		return nil, fmt.Errorf("failed to attach pdf summary: %w", err)
	}

	if msg.LogoPath != "" {
		mail.EmbedFile(msg.LogoPath,
			gomail.WithFileName("logo-profefranko.png"),
			gomail.WithFileContentID(notify.LogoCID))
	}

	return mail, nil
}
