package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type resendClient struct {
	client *resend.Client
	config ResendConfig
}

// NewResendClient creates a Resend-backed provider.
func NewResendClient(cfg ResendConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrInvalidConfig)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: RESEND_FROM is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: RESEND_FROM must be a valid email address", ErrInvalidConfig)
	}

	return &resendClient{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

func (c *resendClient) Name() string { return ProviderResend }

// SendEmail delivers the message through Resend's JSON API. A plaintext part
// is derived from the HTML body when the caller supplied none, and metadata
// entries become Resend tags.
func (c *resendClient) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	text := data.Text
	if strings.TrimSpace(text) == "" && data.HTML != "" {
		text = htmlToText(data.HTML)
	}

	params := &resend.SendEmailRequest{
		From:    c.config.From,
		To:      data.To,
		Cc:      data.Cc,
		Bcc:     data.Bcc,
		Subject: data.Subject,
		Text:    text,
		Html:    data.HTML,
		ReplyTo: data.ReplyTo,
		Headers: priorityHeaders(data.Priority),
	}

	for key, value := range data.Metadata {
		params.Tags = append(params.Tags, resend.Tag{Name: key, Value: value})
	}

	for _, att := range data.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    att.Filename,
			Content:     att.Content,
			ContentType: att.ContentType,
		})
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}

	return &SendReceipt{MessageID: sent.Id}, nil
}

// priorityHeaders builds the X-Priority and X-Mailer headers shared by the
// HTTP API providers.
func priorityHeaders(p Priority) map[string]string {
	return map[string]string{
		"X-Priority": p.headerValue(),
		"X-Mailer":   mailerName,
	}
}

// mailerName identifies this sender in the X-Mailer header.
const mailerName = "nitrokit-mailer"
