// Package notify is the outbound email/SMS capability used by the panic
// dispatcher. Delivery is best-effort: callers count successes and never
// retry or queue failed attempts.
package notify

import (
	"context"
	"log/slog"
)

type Email struct {
	To      string
	Subject string
	Text    string
}

type SMS struct {
	To   string
	Text string
}

type Notifier interface {
	SendEmail(ctx context.Context, msg Email) error
	SendSMS(ctx context.Context, msg SMS) error
}

// New returns the notifier for the configured mode. "log" writes the
// message to the log instead of delivering; it is the default until a real
// provider (Resend, Twilio, Termii) is wired behind the interface.
func New(mode string) Notifier {
	switch mode {
	case "log":
		return &LogNotifier{}
	default:
		return &noopNotifier{}
	}
}

// LogNotifier logs every message instead of delivering it.
type LogNotifier struct{}

func (n *LogNotifier) SendEmail(_ context.Context, msg Email) error {
	slog.Info("notify/email", "to", msg.To, "subject", msg.Subject, "text", msg.Text)
	return nil
}

func (n *LogNotifier) SendSMS(_ context.Context, msg SMS) error {
	slog.Info("notify/sms", "to", msg.To, "text", msg.Text)
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) SendEmail(_ context.Context, msg Email) error {
	slog.Info("notify/email:noop", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (n *noopNotifier) SendSMS(_ context.Context, msg SMS) error {
	slog.Info("notify/sms:noop", "to", msg.To)
	return nil
}
