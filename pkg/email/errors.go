package email

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed provider configuration.
	// Raised at construction, never during a send.
	ErrInvalidConfig = errors.New("email: invalid config")

	// ErrUnknownProvider indicates an unrecognized provider name.
	ErrUnknownProvider = errors.New("email: unknown provider")

	// ErrInvalidParams indicates the message failed structural validation
	// before any network call was made.
	ErrInvalidParams = errors.New("email: invalid params")

	// ErrFailedToSendEmail wraps transport-level failures.
	ErrFailedToSendEmail = errors.New("email: failed to send")

	// ErrRateLimitExceeded indicates the per-recipient send quota was hit.
	ErrRateLimitExceeded = errors.New("email: rate limit exceeded")

	// ErrAttachmentsUnsupported indicates the selected provider cannot carry
	// attachments. The send fails closed rather than silently dropping data.
	ErrAttachmentsUnsupported = errors.New("email: provider does not support attachments")

	// ErrTemplateNotFound indicates the requested template id is not registered.
	ErrTemplateNotFound = errors.New("email: template not found")
)
