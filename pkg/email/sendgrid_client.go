package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridClient struct {
	client *sendgrid.Client
	config SendGridConfig
}

// NewSendGridClient creates a SendGrid-backed provider.
func NewSendGridClient(cfg SendGridConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: SENDGRID_API_KEY is required", ErrInvalidConfig)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: SENDGRID_FROM is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: SENDGRID_FROM must be a valid email address", ErrInvalidConfig)
	}

	return &sendgridClient{
		client: sendgrid.NewSendClient(cfg.APIKey),
		config: cfg,
	}, nil
}

func (c *sendgridClient) Name() string { return ProviderSendGrid }

// SendEmail delivers the message through SendGrid's v3 Mail Send API.
// Metadata entries map to per-personalization custom args, and attachments
// are base64-encoded by this adapter because the API carries them as text.
func (c *sendgridClient) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", c.config.From))
	message.Subject = data.Subject

	personalization := mail.NewPersonalization()
	for _, addr := range data.To {
		personalization.AddTos(mail.NewEmail("", addr))
	}
	for _, addr := range data.Cc {
		personalization.AddCCs(mail.NewEmail("", addr))
	}
	for _, addr := range data.Bcc {
		personalization.AddBCCs(mail.NewEmail("", addr))
	}
	for key, value := range data.Metadata {
		personalization.SetCustomArg(key, value)
	}
	message.AddPersonalizations(personalization)

	text := data.Text
	if strings.TrimSpace(text) == "" && data.HTML != "" {
		text = htmlToText(data.HTML)
	}
	// SendGrid requires the plain part before the HTML part.
	if text != "" {
		message.AddContent(mail.NewContent("text/plain", text))
	}
	if data.HTML != "" {
		message.AddContent(mail.NewContent("text/html", data.HTML))
	}

	if data.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", data.ReplyTo))
	}

	for key, value := range priorityHeaders(data.Priority) {
		message.SetHeader(key, value)
	}

	for _, att := range data.Attachments {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(att.Content))
		attachment.SetFilename(att.Filename)
		if att.ContentType != "" {
			attachment.SetType(att.ContentType)
		}
		disposition := att.Disposition
		if disposition == "" {
			disposition = DispositionAttachment
		}
		attachment.SetDisposition(string(disposition))
		if att.ContentID != "" {
			attachment.SetContentID(att.ContentID)
		}
		message.AddAttachment(attachment)
	}

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.StatusCode >= 400 {
		return nil, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("sendgrid error: %d - %s", resp.StatusCode, resp.Body),
		)
	}

	messageID := ""
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	return &SendReceipt{MessageID: messageID}, nil
}
