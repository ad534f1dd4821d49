// Package email provides a provider-agnostic service for sending transactional
// emails through pluggable delivery backends: Resend, SendGrid, Mailgun,
// Postmark, plain SMTP, and a disk-writing development sender.
//
// The package follows the toolkit principles:
//   - Provider abstraction for easy vendor switching
//   - Explicit configuration with env-tagged structs and fail-fast validation
//   - Result objects instead of errors on the sending path
//   - Modern error handling with sentinel errors
//
// # Architecture
//
// Adapters implement the Provider interface and are constructed through
// NewProvider from a Config naming one of the known backends. The Service
// orchestrates sends on top of a single Provider: per-recipient rate
// limiting, structural validation, {{key}} template substitution, bulk
// batching, and structured logging with masked recipient addresses.
//
// Service.SendEmail never returns an error. Rate-limit rejections,
// validation failures, transport errors, and even provider panics are all
// folded into the returned EmailResult, so calling code branches on
// result.Success and surfaces result.Error as needed.
//
// # Usage
//
// Configuration-driven construction at process start:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	svc, err := email.NewServiceFromConfig(cfg, email.WithLogger(log))
//	if err != nil {
//	    // Handle configuration error
//	}
//	defer svc.Close()
//
//	result := svc.SendEmail(ctx, email.EmailData{
//	    To:      []string{"user@example.com"},
//	    Subject: "Welcome!",
//	    HTML:    htmlContent,
//	})
//	if !result.Success {
//	    log.Warn("send failed", "error", result.Error)
//	}
//
// Manual wiring when more control is needed:
//
//	provider, err := email.NewResendClient(email.ResendConfig{
//	    APIKey: "re_...",
//	    From:   "noreply@example.com",
//	})
//	svc := email.NewService(provider,
//	    email.WithRateLimiter(limiter),
//	    email.WithBatchSize(25),
//	)
//
// Development mode saves emails locally instead of delivering them:
//
//	svc, _ := email.NewServiceFromConfig(email.Config{Provider: "dev"})
//	// Creates timestamped HTML and JSON files in ./emails/
//
// # Templates
//
// Templates are plain subject/text/HTML skeletons with {{key}} placeholders,
// registered in memory or loaded from a YAML file:
//
//	svc.RegisterTemplate(email.Template{
//	    ID:      "welcome",
//	    Subject: "Welcome, {{name}}!",
//	    HTML:    "<p>Hi {{name}}, your account is ready.</p>",
//	})
//
//	result := svc.SendEmailWithTemplate(ctx, "welcome",
//	    email.EmailData{To: []string{"user@example.com"}},
//	    map[string]any{"name": "Ada"},
//	)
//
// Substituted values are not HTML-escaped. Never interpolate untrusted input
// into an HTML template without escaping it first.
//
// # Error Handling
//
// The package provides sentinel errors for common failure scenarios:
//   - ErrInvalidConfig: Provider configuration validation failed
//   - ErrUnknownProvider: Config names a backend this package does not know
//   - ErrInvalidParams: Message failed structural validation
//   - ErrFailedToSendEmail: Transport-level delivery failure
//   - ErrRateLimitExceeded: Per-recipient send quota was hit
//   - ErrAttachmentsUnsupported: Selected backend cannot carry attachments
//   - ErrTemplateNotFound: Requested template id is not registered
//
// Adapter constructors return errors checkable with errors.Is(); on the
// sending path the sentinel text appears inside EmailResult.Error instead.
package email
