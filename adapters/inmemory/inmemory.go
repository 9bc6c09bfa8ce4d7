package inmemory

import (
	"context"
	"sync"

	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

// Forwarder is a thread-safe in-memory implementation of cmed.Forwarder.
// It records forwarded notifications for testing and examples.
type Forwarder struct {
	mu            sync.Mutex
	Notifications []cmed.Notification
	Options       []cmed.ForwardOptions
}

// Ensure Forwarder implements the contract.
var _ cmed.Forwarder = (*Forwarder)(nil)

// New creates a new in-memory forwarder instance.
func New() *Forwarder { return &Forwarder{} }

func (f *Forwarder) Forward(ctx context.Context, n cmed.Notification, opts cmed.ForwardOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	f.Notifications = append(f.Notifications, n)
	f.Options = append(f.Options, opts)
	f.mu.Unlock()

	return nil
}

// Forwarded returns a snapshot of the recorded notifications.
func (f *Forwarder) Forwarded() []cmed.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]cmed.Notification(nil), f.Notifications...)
}
