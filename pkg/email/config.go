package email

import "time"

// Config selects and configures one provider for the process. Exactly one
// sub-config — the one matching Provider — is used; the rest stay zero.
// Field-level validation happens in the adapter constructors so a missing
// credential fails at construction with the variable named, not at first send.
type Config struct {
	// Provider selects the transport: resend, sendgrid, mailgun, smtp,
	// postmark, or dev.
	Provider string `env:"EMAIL_PROVIDER" envDefault:"smtp"`

	Resend   ResendConfig
	SendGrid SendGridConfig
	Mailgun  MailgunConfig
	SMTP     SMTPConfig
	Postmark PostmarkConfig
	Dev      DevConfig

	// RateLimit is the number of sends allowed per recipient per RateWindow.
	RateLimit  int           `env:"EMAIL_RATE_LIMIT" envDefault:"100"`
	RateWindow time.Duration `env:"EMAIL_RATE_WINDOW" envDefault:"1h"`

	// BatchSize and BatchDelay control bulk sending: items are sent
	// concurrently in slices of BatchSize with a flat BatchDelay pause
	// between slices.
	BatchSize  int           `env:"EMAIL_BATCH_SIZE" envDefault:"10"`
	BatchDelay time.Duration `env:"EMAIL_BATCH_DELAY" envDefault:"1s"`
}

// ResendConfig configures the Resend HTTP API provider.
type ResendConfig struct {
	APIKey string `env:"RESEND_API_KEY"`
	From   string `env:"RESEND_FROM"`
}

// SendGridConfig configures the SendGrid v3 HTTP API provider.
type SendGridConfig struct {
	APIKey string `env:"SENDGRID_API_KEY"`
	From   string `env:"SENDGRID_FROM"`
}

// MailgunConfig configures the Mailgun provider. BaseURL switches regions,
// e.g. https://api.eu.mailgun.net/v3 for EU-hosted domains.
type MailgunConfig struct {
	APIKey  string `env:"MAILGUN_API_KEY"`
	Domain  string `env:"MAILGUN_DOMAIN"`
	From    string `env:"MAILGUN_FROM"`
	BaseURL string `env:"MAILGUN_BASE_URL"`
}

// SMTPConfig configures the SMTP provider. Secure selects implicit TLS on
// connect; otherwise the connection upgrades via STARTTLS when the server
// offers it.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Secure   bool   `env:"SMTP_SECURE" envDefault:"false"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// PostmarkConfig configures the Postmark provider.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	From         string `env:"POSTMARK_FROM"`
}

// DevConfig configures the development provider, which writes messages to
// disk instead of sending them.
type DevConfig struct {
	Dir string `env:"EMAIL_DEV_DIR" envDefault:"./emails"`
}
