package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/sitepulse/visit-notifier/internal/config"
)

// SMTPProvider delivers notifications via SMTP using the go-mail library.
// The underlying client is created once and reused for every send; it holds
// no per-request state and is safe for concurrent use.
type SMTPProvider struct {
	cfg    config.SMTPConfig
	client *mail.Client
}

// NewSMTPProvider creates an SMTPProvider for the given delivery settings.
// The settings must have passed SMTPConfig.Validate.
func NewSMTPProvider(cfg config.SMTPConfig) (*SMTPProvider, error) {
	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(tlsPolicyFromEncryption(cfg.Encryption)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mail client: %w", err)
	}
	return &SMTPProvider{cfg: cfg, client: c}, nil
}

// Name returns the provider identifier.
func (p *SMTPProvider) Name() string { return "smtp" }

// Send delivers msg to the configured recipient as plain text.
func (p *SMTPProvider) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(p.cfg.Sender()); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(p.cfg.Recipient); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", p.cfg.Recipient, err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	return p.client.DialAndSendWithContext(ctx, m)
}

// tlsPolicyFromEncryption converts the encryption setting to a go-mail TLSPolicy.
func tlsPolicyFromEncryption(enc string) mail.TLSPolicy {
	switch enc {
	case "ssl_tls":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
