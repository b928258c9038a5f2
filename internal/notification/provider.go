// Package notification classifies website events and delivers them as
// email notifications through a mail-transport provider.
package notification

import "context"

// Message is the rendered notification content handed to a Provider.
// The recipient is fixed by provider configuration, not by the message.
type Message struct {
	Subject string
	Body    string
}

// Provider is the interface for notification delivery backends.
type Provider interface {
	// Name returns the provider identifier (e.g. "smtp").
	Name() string
	// Send delivers the message using the provider's transport.
	Send(ctx context.Context, msg Message) error
}
