package email

import "fmt"

// Known provider names accepted by NewProvider.
const (
	ProviderResend   = "resend"
	ProviderSendGrid = "sendgrid"
	ProviderMailgun  = "mailgun"
	ProviderSMTP     = "smtp"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// NewProvider constructs the adapter named by cfg.Provider from its matching
// sub-config. The set of providers is closed: every variant is enumerated
// here, and an unknown name is a configuration error. Field validation is
// delegated to the adapter constructors, so a returned Provider is fully
// ready to send.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderResend:
		return NewResendClient(cfg.Resend)
	case ProviderSendGrid:
		return NewSendGridClient(cfg.SendGrid)
	case ProviderMailgun:
		return NewMailgunClient(cfg.Mailgun)
	case ProviderSMTP:
		return NewSMTPClient(cfg.SMTP)
	case ProviderPostmark:
		return NewPostmarkClient(cfg.Postmark)
	case ProviderDev:
		return NewDevSender(cfg.Dev)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// MustNewProvider creates a provider that panics on invalid config.
// Follows the toolkit pattern of failing fast during initialization rather
// than allowing a broken service to start.
func MustNewProvider(cfg Config) Provider {
	provider, err := NewProvider(cfg)
	if err != nil {
		panic(err)
	}
	return provider
}
