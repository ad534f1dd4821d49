package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type smtpClient struct {
	config SMTPConfig
	auth   smtp.Auth

	// One cached transport connection per adapter instance, dialed lazily on
	// first send and reused until it stops answering NOOP.
	mu   sync.Mutex
	conn *smtp.Client
}

// NewSMTPClient creates an SMTP-backed provider.
func NewSMTPClient(cfg SMTPConfig) (Provider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP_HOST is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: SMTP_USERNAME is required", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: SMTP_PASSWORD is required", ErrInvalidConfig)
	}
	if cfg.From == "" || !emailRegex.MatchString(cfg.From) {
		return nil, fmt.Errorf("%w: SMTP_FROM must be a valid email address", ErrInvalidConfig)
	}

	return &smtpClient{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

func (c *smtpClient) Name() string { return ProviderSMTP }

// SendEmail performs one SMTP transaction on the cached connection.
// Recipients are issued individually so a rejected address does not sink the
// whole message: if at least one RCPT is accepted the send proceeds and the
// rejected addresses come back as a warning on the receipt.
func (c *smtpClient) SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}

	messageID := c.newMessageID()
	message, err := c.buildMessage(data, messageID)
	if err != nil {
		return nil, errors.Join(ErrFailedToSendEmail, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	client, err := c.clientLocked()
	if err != nil {
		return nil, err
	}

	if err := client.Mail(c.config.From); err != nil {
		c.dropLocked()
		return nil, classifySMTPError(err)
	}

	recipients := make([]string, 0, len(data.To)+len(data.Cc)+len(data.Bcc))
	recipients = append(recipients, data.To...)
	recipients = append(recipients, data.Cc...)
	recipients = append(recipients, data.Bcc...)

	var rejected []string
	accepted := 0
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			rejected = append(rejected, rcpt)
		} else {
			accepted++
		}
	}

	if accepted == 0 {
		_ = client.Reset()
		return nil, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("all recipients rejected: %s", strings.Join(rejected, ", ")),
		)
	}

	writer, err := client.Data()
	if err != nil {
		c.dropLocked()
		return nil, classifySMTPError(err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		c.dropLocked()
		return nil, classifySMTPError(err)
	}
	if err := writer.Close(); err != nil {
		c.dropLocked()
		return nil, classifySMTPError(err)
	}

	receipt := &SendReceipt{MessageID: messageID}
	if len(rejected) > 0 {
		receipt.Warning = "rejected recipients: " + strings.Join(rejected, ", ")
	}

	return receipt, nil
}

// VerifyConnection probes the transport by dialing if needed and issuing NOOP.
func (c *smtpClient) VerifyConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	client, err := c.clientLocked()
	if err != nil {
		return err
	}

	if err := client.Noop(); err != nil {
		c.dropLocked()
		return classifySMTPError(err)
	}

	return nil
}

// Close terminates the cached connection. The adapter remains usable: the
// next send dials again.
func (c *smtpClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Quit()
	c.conn = nil
	return err
}

// clientLocked returns the cached connection, revalidating it with NOOP and
// redialing when it has gone stale. Callers must hold c.mu.
func (c *smtpClient) clientLocked() (*smtp.Client, error) {
	if c.conn != nil {
		if err := c.conn.Noop(); err == nil {
			return c.conn, nil
		}
		c.dropLocked()
	}

	client, err := c.dial()
	if err != nil {
		return nil, err
	}

	c.conn = client
	return client, nil
}

func (c *smtpClient) dropLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// dial establishes and authenticates a new connection. Secure selects
// implicit TLS; otherwise the session upgrades via STARTTLS when offered.
func (c *smtpClient) dial() (*smtp.Client, error) {
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))
	tlsConfig := &tls.Config{ServerName: c.config.Host}

	var client *smtp.Client
	if c.config.Secure {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return nil, classifySMTPError(err)
		}
		client, err = smtp.NewClient(conn, c.config.Host)
		if err != nil {
			_ = conn.Close()
			return nil, classifySMTPError(err)
		}
	} else {
		var err error
		client, err = smtp.Dial(addr)
		if err != nil {
			return nil, classifySMTPError(err)
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				_ = client.Close()
				return nil, classifySMTPError(err)
			}
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(c.auth); err != nil {
			_ = client.Close()
			return nil, classifySMTPError(err)
		}
	}

	return client, nil
}

// classifySMTPError distinguishes the failure modes operators act on
// differently: unreachable server, rejected credentials, or anything else.
func classifySMTPError(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("smtp connection failed: %w", err))
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && (protoErr.Code == 534 || protoErr.Code == 535) {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("smtp authentication failed: %w", err))
	}

	return errors.Join(ErrFailedToSendEmail, err)
}

// newMessageID mints a globally unique Message-ID for the configured host.
func (c *smtpClient) newMessageID() string {
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), c.config.Host)
}

// buildMessage assembles the MIME message. Structure depends on content:
// single part for one body, multipart/alternative for text+HTML, and
// multipart/mixed wrapping everything when attachments are present.
func (c *smtpClient) buildMessage(data EmailData, messageID string) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader := func(name, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", name, value)
	}

	writeHeader("From", c.config.From)
	writeHeader("To", strings.Join(data.To, ", "))
	if len(data.Cc) > 0 {
		writeHeader("Cc", strings.Join(data.Cc, ", "))
	}
	if data.ReplyTo != "" {
		writeHeader("Reply-To", data.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", data.Subject))
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", messageID)
	writeHeader("MIME-Version", "1.0")
	writeHeader("X-Priority", data.Priority.headerValue())
	writeHeader("X-Mailer", mailerName)

	// Metadata rides as custom headers since SMTP has no tag concept.
	for key, value := range data.Metadata {
		writeHeader("X-Custom-"+key, value)
	}

	text := data.Text
	if strings.TrimSpace(text) == "" && data.HTML != "" {
		text = htmlToText(data.HTML)
	}

	if len(data.Attachments) > 0 {
		mixed := multipart.NewWriter(&buf)
		writeHeader("Content-Type", `multipart/mixed; boundary="`+mixed.Boundary()+`"`)
		buf.WriteString("\r\n")

		var body bytes.Buffer
		alt := multipart.NewWriter(&body)
		if err := writeBodyParts(alt, text, data.HTML); err != nil {
			return nil, err
		}
		if err := alt.Close(); err != nil {
			return nil, err
		}

		bodyPart, err := mixed.CreatePart(textproto.MIMEHeader{
			"Content-Type": {`multipart/alternative; boundary="` + alt.Boundary() + `"`},
		})
		if err != nil {
			return nil, err
		}
		if _, err := bodyPart.Write(body.Bytes()); err != nil {
			return nil, err
		}

		for _, att := range data.Attachments {
			if err := writeAttachmentPart(mixed, att); err != nil {
				return nil, err
			}
		}

		if err := mixed.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	if text != "" && data.HTML != "" {
		alt := multipart.NewWriter(&buf)
		writeHeader("Content-Type", `multipart/alternative; boundary="`+alt.Boundary()+`"`)
		buf.WriteString("\r\n")

		if err := writeBodyParts(alt, text, data.HTML); err != nil {
			return nil, err
		}
		if err := alt.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	contentType := "text/plain"
	body := text
	if data.HTML != "" {
		contentType = "text/html"
		body = data.HTML
	}
	writeHeader("Content-Type", contentType+`; charset="UTF-8"`)
	buf.WriteString("\r\n")
	buf.WriteString(body)

	return buf.Bytes(), nil
}

// writeBodyParts writes text and HTML alternatives in ascending preference
// order, plain first.
func writeBodyParts(w *multipart.Writer, text, html string) error {
	if text != "" {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type": {`text/plain; charset="UTF-8"`},
		})
		if err != nil {
			return err
		}
		if _, err := part.Write([]byte(text)); err != nil {
			return err
		}
	}

	if html != "" {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type": {`text/html; charset="UTF-8"`},
		})
		if err != nil {
			return err
		}
		if _, err := part.Write([]byte(html)); err != nil {
			return err
		}
	}

	return nil
}

func writeAttachmentPart(w *multipart.Writer, att Attachment) error {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	disposition := att.Disposition
	if disposition == "" {
		disposition = DispositionAttachment
	}

	header := textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf(`%s; filename="%s"`, disposition, att.Filename)},
	}
	if att.ContentID != "" {
		header.Set("Content-ID", "<"+att.ContentID+">")
	}

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}

	// Base64 wrapped at 76 columns per RFC 2045.
	encoded := base64.StdEncoding.EncodeToString(att.Content)
	for len(encoded) > 0 {
		n := min(len(encoded), 76)
		if _, err := part.Write([]byte(encoded[:n])); err != nil {
			return err
		}
		if _, err := part.Write([]byte("\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}

	return nil
}
