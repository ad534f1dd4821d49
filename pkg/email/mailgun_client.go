package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
)

type mailgunClient struct {
	client *mailgun.MailgunImpl
	config MailgunConfig
}

// NewMailgunClient creates a Mailgun-backed provider. BaseURL switches the
// API region (the SDK defaults to the US endpoint).
func NewMailgunClient(cfg MailgunConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: MAILGUN_API_KEY is required", ErrInvalidConfig)
	}
	if cfg.Domain == "" {
		return nil, fmt.Errorf("%w: MAILGUN_DOMAIN is required", ErrInvalidConfig)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: MAILGUN_FROM is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: MAILGUN_FROM must be a valid email address", ErrInvalidConfig)
	}

	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.BaseURL != "" {
		mg.SetAPIBase(cfg.BaseURL)
	}

	return &mailgunClient{
		client: mg,
		config: cfg,
	}, nil
}

func (c *mailgunClient) Name() string { return ProviderMailgun }

// SendEmail delivers the message through Mailgun's form-encoded messages API.
// Metadata entries become v: variables and reply-to the h:Reply-To header;
// the SDK handles the form encoding and basic auth.
//
// Attachments fail the send: Mailgun message variables and attachments do
// not round-trip together through this transport, and dropping the caller's
// data silently would be worse than refusing it.
func (c *mailgunClient) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	if len(data.Attachments) > 0 {
		return nil, ErrAttachmentsUnsupported
	}

	text := data.Text
	if strings.TrimSpace(text) == "" && data.HTML != "" {
		text = htmlToText(data.HTML)
	}

	message := c.client.NewMessage(c.config.From, data.Subject, text, data.To...)
	if data.HTML != "" {
		message.SetHtml(data.HTML)
	}

	for _, addr := range data.Cc {
		message.AddCC(addr)
	}
	for _, addr := range data.Bcc {
		message.AddBCC(addr)
	}
	if data.ReplyTo != "" {
		message.SetReplyTo(data.ReplyTo)
	}

	for key, value := range priorityHeaders(data.Priority) {
		message.AddHeader(key, value)
	}

	for key, value := range data.Metadata {
		if err := message.AddVariable(key, value); err != nil {
			return nil, errors.Join(ErrFailedToSendEmail, err)
		}
	}

	_, id, err := c.client.Send(ctx, message)
	if err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}

	return &SendReceipt{MessageID: id}, nil
}
