package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type devSender struct {
	dir string
}

// NewDevSender creates a development provider that writes each message to
// disk as an HTML file plus a JSON metadata sidecar instead of delivering it.
// The directory is created on first send.
func NewDevSender(cfg DevConfig) (Provider, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "./emails"
	}
	return &devSender{dir: dir}, nil
}

func (d *devSender) Name() string { return ProviderDev }

// devMessageRecord is the JSON sidecar written next to the HTML body.
type devMessageRecord struct {
	MessageID   string            `json:"message_id"`
	Timestamp   string            `json:"timestamp"`
	To          []string          `json:"to"`
	Cc          []string          `json:"cc,omitempty"`
	Bcc         []string          `json:"bcc,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	Subject     string            `json:"subject"`
	Text        string            `json:"text,omitempty"`
	Priority    string            `json:"priority,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
}

func (d *devSender) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	messageID := "dev-" + uuid.NewString()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(data.Subject))

	body := data.HTML
	if body == "" {
		body = "<pre>" + data.Text + "</pre>"
	}

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(body), 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	record := devMessageRecord{
		MessageID: messageID,
		Timestamp: now.Format(time.RFC3339),
		To:        data.To,
		Cc:        data.Cc,
		Bcc:       data.Bcc,
		ReplyTo:   data.ReplyTo,
		Subject:   data.Subject,
		Text:      data.Text,
		Priority:  string(data.Priority),
		Metadata:  data.Metadata,
	}
	for _, att := range data.Attachments {
		record.Attachments = append(record.Attachments, att.Filename)
	}

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return &SendReceipt{MessageID: messageID}, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
// It replaces spaces with underscores, removes special characters,
// and truncates to a reasonable length.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
