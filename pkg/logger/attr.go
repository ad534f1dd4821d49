package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Provider records the email provider name under the key "provider".
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Recipients records a recipient count under the key "recipients".
// Only the count is logged, never the address list.
func Recipients(count int) slog.Attr {
	return slog.Int("recipients", count)
}

// MessageID records the provider-assigned message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	return slog.String("message_id", id)
}
