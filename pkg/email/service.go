package email

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mustafagenc/nitrokit/pkg/logger"
	"github.com/mustafagenc/nitrokit/pkg/ratelimit"
	"github.com/mustafagenc/nitrokit/pkg/sanitizer"
)

// Service orchestrates sending on top of a single Provider: rate limiting,
// validation, template substitution, and structured logging. Its send methods
// never return an error; every failure mode, including a panicking provider,
// is folded into the returned EmailResult so callers branch on Success alone.
type Service struct {
	provider   Provider
	log        *slog.Logger
	limiter    ratelimit.Limiter
	batchSize  int
	batchDelay time.Duration

	mu        sync.RWMutex
	templates map[string]Template
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for send outcomes. Recipient addresses are
// always masked before logging.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRateLimiter enables per-recipient rate limiting. The key is the
// lowercased first To address of each message. Without this option the
// service does not rate limit.
func WithRateLimiter(limiter ratelimit.Limiter) Option {
	return func(s *Service) { s.limiter = limiter }
}

// WithRateLimitDisabled removes any configured limiter. Useful for tests and
// for one-off services built from a Config that would otherwise attach one.
func WithRateLimitDisabled() Option {
	return func(s *Service) { s.limiter = nil }
}

// WithBatchSize sets how many messages a bulk send dispatches concurrently
// per batch. Non-positive values are ignored.
func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// WithBatchDelay sets the pause between bulk batches. Negative values are
// ignored; zero disables the pause.
func WithBatchDelay(delay time.Duration) Option {
	return func(s *Service) {
		if delay >= 0 {
			s.batchDelay = delay
		}
	}
}

// NewService creates a Service around the given provider.
// Defaults: discard logger, no rate limiting, batches of 10 with a 1s pause.
func NewService(provider Provider, opts ...Option) *Service {
	s := &Service{
		provider:   provider,
		log:        logger.NewDiscard(),
		batchSize:  10,
		batchDelay: time.Second,
		templates:  make(map[string]Template),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceFromConfig builds the provider named by cfg and wires a
// memory-backed fixed-window limiter plus the batch knobs from the same
// config. Options are applied afterwards and may override any of it.
func NewServiceFromConfig(cfg Config, opts ...Option) (*Service, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	limiter, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		return nil, err
	}

	combined := make([]Option, 0, len(opts)+3)
	combined = append(combined,
		WithRateLimiter(limiter),
		WithBatchSize(cfg.BatchSize),
		WithBatchDelay(cfg.BatchDelay),
	)
	combined = append(combined, opts...)

	return NewService(provider, combined...), nil
}

// SendEmail runs the full pipeline for one message: rate limit, validate,
// substitute template variables, send, log. The returned result always
// carries the provider name; on success MessageID is non-empty, on failure
// Error describes what went wrong.
func (s *Service) SendEmail(ctx context.Context, data EmailData) (result EmailResult) {
	result = EmailResult{Provider: s.provider.Name()}

	defer func() {
		if r := recover(); r != nil {
			result = EmailResult{
				Provider: s.provider.Name(),
				Error:    fmt.Sprintf("panic during send: %v", r),
			}
			s.log.ErrorContext(ctx, "email send panicked",
				logger.Provider(s.provider.Name()),
				slog.Any("panic", r))
		}
	}()

	if !s.allowSend(ctx, data, &result) {
		return result
	}

	if err := data.Validate(); err != nil {
		result.Error = err.Error()
		s.log.WarnContext(ctx, "email rejected by validation",
			logger.Provider(s.provider.Name()),
			logger.Error(err))
		return result
	}

	if len(data.TemplateData) > 0 {
		data.Subject = substitute(data.Subject, data.TemplateData)
		data.Text = substitute(data.Text, data.TemplateData)
		data.HTML = substitute(data.HTML, data.TemplateData)
	}

	receipt, err := s.provider.SendEmail(ctx, data)
	if err != nil {
		result.Error = err.Error()
		s.log.ErrorContext(ctx, "email send failed",
			logger.Provider(s.provider.Name()),
			slog.String("to", maskedRecipient(data.To)),
			logger.Recipients(len(data.To)+len(data.Cc)+len(data.Bcc)),
			logger.Error(err))
		return result
	}

	result.Success = true
	result.MessageID = receipt.MessageID
	result.Warning = receipt.Warning

	s.log.InfoContext(ctx, "email sent",
		logger.Provider(s.provider.Name()),
		slog.String("to", maskedRecipient(data.To)),
		logger.Recipients(len(data.To)+len(data.Cc)+len(data.Bcc)),
		logger.MessageID(receipt.MessageID))

	return result
}

// allowSend applies the rate limiter. A store error fails open: delivery is
// more important than precise accounting, so the send proceeds with a warning
// in the log. Returns false when the send must stop, with result populated.
func (s *Service) allowSend(ctx context.Context, data EmailData, result *EmailResult) bool {
	if s.limiter == nil || len(data.To) == 0 {
		return true
	}

	key := strings.ToLower(data.To[0])
	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "rate limit check failed, allowing send",
			logger.Provider(s.provider.Name()),
			logger.Error(err))
		return true
	}

	if !res.Allowed {
		result.Error = fmt.Sprintf("%s: retry after %s", ErrRateLimitExceeded, res.RetryAfter().Round(time.Second))
		s.log.WarnContext(ctx, "email rate limited",
			logger.Provider(s.provider.Name()),
			slog.String("to", sanitizer.MaskEmail(data.To[0])),
			slog.Time("reset_at", res.ResetAt))
		return false
	}

	return true
}

// SendBulkEmails sends items in sequential batches of the configured size,
// dispatching each batch concurrently and settling it before moving on.
// Results preserve input order. Context cancellation during the inter-batch
// pause marks all remaining items failed without calling the provider.
func (s *Service) SendBulkEmails(ctx context.Context, items []EmailData) BulkEmailResult {
	results := make([]EmailResult, len(items))

	for start := 0; start < len(items); start += s.batchSize {
		end := min(start+s.batchSize, len(items))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = s.SendEmail(ctx, items[i])
			}()
		}
		wg.Wait()

		if end >= len(items) {
			break
		}

		if s.batchDelay > 0 {
			select {
			case <-time.After(s.batchDelay):
			case <-ctx.Done():
				for i := end; i < len(items); i++ {
					results[i] = EmailResult{
						Provider: s.provider.Name(),
						Error:    ctx.Err().Error(),
					}
				}
				return tally(results)
			}
		}
	}

	bulk := tally(results)
	s.log.InfoContext(ctx, "bulk email send finished",
		logger.Provider(s.provider.Name()),
		slog.Int("total", bulk.Total),
		slog.Int("successful", bulk.Successful),
		slog.Int("failed", bulk.Failed))

	return bulk
}

func tally(results []EmailResult) BulkEmailResult {
	bulk := BulkEmailResult{Total: len(results), Results: results}
	for _, r := range results {
		if r.Success {
			bulk.Successful++
		} else {
			bulk.Failed++
		}
	}
	return bulk
}

// HealthStatus reports the outcome of a provider probe.
type HealthStatus struct {
	Provider string
	Healthy  bool
	Error    string
}

// HealthCheck probes the provider when it supports probing. Providers without
// a VerifyConnection method are reported healthy unconditionally: an HTTP API
// adapter has no connection to check outside of an actual send.
func (s *Service) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{Provider: s.provider.Name(), Healthy: true}

	if hc, ok := s.provider.(HealthChecker); ok {
		if err := hc.VerifyConnection(ctx); err != nil {
			status.Healthy = false
			status.Error = err.Error()
		}
	}

	return status
}

// RateLimitStatus is one active rate-limit window, keyed by masked recipient.
type RateLimitStatus struct {
	Recipient string
	Count     int64
	ResetAt   time.Time
}

// Statistics describes the service's current state.
type Statistics struct {
	Provider      string
	RateLimit     []RateLimitStatus
	TemplateCount int
}

// Statistics snapshots provider name, active rate-limit windows (when the
// limiter's store supports enumeration), and registered template count.
// Recipient keys are masked; raw addresses never leave the limiter.
func (s *Service) Statistics() Statistics {
	stats := Statistics{Provider: s.provider.Name()}

	s.mu.RLock()
	stats.TemplateCount = len(s.templates)
	s.mu.RUnlock()

	if snap, ok := s.limiter.(interface{ Snapshot() []ratelimit.KeyStatus }); ok {
		for _, ks := range snap.Snapshot() {
			stats.RateLimit = append(stats.RateLimit, RateLimitStatus{
				Recipient: sanitizer.MaskEmail(ks.Key),
				Count:     ks.Count,
				ResetAt:   ks.ResetAt,
			})
		}
	}

	return stats
}

// Close releases the provider's resources if it holds any. Only the SMTP
// provider maintains a persistent connection today.
func (s *Service) Close() error {
	if closer, ok := s.provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// maskedRecipient renders the first recipient masked for logging.
func maskedRecipient(to []string) string {
	if len(to) == 0 {
		return ""
	}
	return sanitizer.MaskEmail(to[0])
}
