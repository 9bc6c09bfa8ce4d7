package mediator

import "context"

// Sender dispatches a request to its single handler and returns the response.
// Strategies and application code that only issue requests should depend on
// this narrow interface rather than the full Mediator.
type Sender interface {
	Send(ctx context.Context, r Request) (any, error)
}

// Publisher fans a notification out to all of its handlers. Publish returns
// once every handler invocation has completed (or the context is cancelled);
// handler failures are aggregated, not swallowed.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// Mediator is the full dispatch surface consumed by application code.
// Implementations are stateless between dispatches and safe for concurrent use.
type Mediator interface {
	Sender
	Publisher

	// Forward mirrors a notification to the configured outbound Forwarder
	// without invoking local handlers. Fails with ErrForwardNotConfigured
	// when no forwarder is attached.
	Forward(ctx context.Context, n Notification, opts ForwardOptions) error

	Close() error
}
