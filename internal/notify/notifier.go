// Package notify hands one-time access codes off for delivery to account
// holders. Actual delivery (SMS gateway, message broker) lives behind the
// Notifier interface so the registry never depends on a transport.
package notify

import "context"

// Notifier delivers an access code to the given phone number.
type Notifier interface {
	Notify(ctx context.Context, phone, code string) error
}
