package email

import "context"

// Priority controls the X-Priority header attached to outbound messages.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// headerValue maps a priority to the conventional X-Priority numeric value.
func (p Priority) headerValue() string {
	switch p {
	case PriorityHigh:
		return "1"
	case PriorityLow:
		return "5"
	default:
		return "3"
	}
}

// Disposition says whether an attachment is delivered as a downloadable file
// or referenced inline from the HTML body via its ContentID.
type Disposition string

const (
	DispositionAttachment Disposition = "attachment"
	DispositionInline     Disposition = "inline"
)

// Attachment is one file carried by an outbound message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
	Disposition Disposition
	ContentID   string // referenced from HTML as cid:<ContentID> for inline attachments
}

// EmailData is one outbound message request. It is constructed by the caller,
// consumed once per send, and never persisted by this package.
type EmailData struct {
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
	ReplyTo     string
	Priority    Priority
	// Metadata is passed through to the provider as tags, custom args, or
	// X-Custom-* headers depending on the transport.
	Metadata map[string]string
	// TemplateID names a registered template when sending through
	// Service.SendEmailWithTemplate; TemplateData drives {{key}} substitution
	// over subject and bodies.
	TemplateID   string
	TemplateData map[string]any
}

// EmailResult is the outcome of one send attempt. Exactly one of MessageID
// and Error is populated, matching Success. Warning carries non-fatal
// transport notes such as partially rejected SMTP recipients.
type EmailResult struct {
	Success   bool
	MessageID string
	Error     string
	Warning   string
	Provider  string
}

// BulkEmailResult aggregates the outcomes of a bulk send. Results preserves
// input order, and Successful+Failed always equals Total.
type BulkEmailResult struct {
	Total      int
	Successful int
	Failed     int
	Results    []EmailResult
}

// SendReceipt is what a provider reports for an accepted message.
type SendReceipt struct {
	MessageID string
	Warning   string
}

// Provider adapts one outbound email transport. Implementations perform
// exactly one network call per SendEmail invocation and never retry; retry
// policy belongs to the caller. Construction validates configuration and
// fails fast, so an instantiated Provider is always ready to send.
type Provider interface {
	SendEmail(ctx context.Context, data EmailData) (*SendReceipt, error)
	Name() string
}

// HealthChecker is implemented by providers that can probe their transport
// (the SMTP provider issues a NOOP on its cached connection). Providers
// without it are reported healthy unconditionally.
type HealthChecker interface {
	VerifyConnection(ctx context.Context) error
}
