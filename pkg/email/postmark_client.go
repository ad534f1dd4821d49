package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config PostmarkConfig
}

// NewPostmarkClient creates a Postmark-backed provider.
func NewPostmarkClient(cfg PostmarkConfig) (Provider, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: POSTMARK_FROM is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: POSTMARK_FROM must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}, nil
}

func (c *postmarkClient) Name() string { return ProviderPostmark }

// SendEmail delivers the message through Postmark's transactional API.
// Postmark takes comma-joined recipient strings; metadata rides in the
// message Metadata map and priority in headers.
func (c *postmarkClient) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	text := data.Text
	if strings.TrimSpace(text) == "" && data.HTML != "" {
		text = htmlToText(data.HTML)
	}

	msg := postmark.Email{
		From:     c.config.From,
		To:       strings.Join(data.To, ","),
		Cc:       strings.Join(data.Cc, ","),
		Bcc:      strings.Join(data.Bcc, ","),
		Subject:  data.Subject,
		TextBody: text,
		HTMLBody: data.HTML,
		ReplyTo:  data.ReplyTo,
		Metadata: data.Metadata,
	}

	for key, value := range priorityHeaders(data.Priority) {
		msg.Headers = append(msg.Headers, postmark.Header{Name: key, Value: value})
	}

	for _, att := range data.Attachments {
		attachment := postmark.Attachment{
			Name:        att.Filename,
			Content:     base64.StdEncoding.EncodeToString(att.Content),
			ContentType: att.ContentType,
		}
		if att.Disposition == DispositionInline && att.ContentID != "" {
			attachment.ContentID = "cid:" + att.ContentID
		}
		msg.Attachments = append(msg.Attachments, attachment)
	}

	resp, err := c.client.SendEmail(ctx, msg)
	if err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return nil, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}

	return &SendReceipt{MessageID: resp.MessageID}, nil
}
