package mediator

import "context"

// RequestHandler is the untyped handler shape the dispatch core invokes for a
// request. It is what a Resolver returns; concrete handlers normally implement
// the generic RequestHandlerOf and are adapted at binding time.
// Implementations must be safe for concurrent use by multiple goroutines.
type RequestHandler interface {
	Handle(ctx context.Context, r Request) (any, error)
}

// NotificationHandler is the untyped handler shape invoked during notification
// fan-out. A Resolver may return any number of these for a notification type.
// Implementations must be safe for concurrent use by multiple goroutines.
type NotificationHandler interface {
	Handle(ctx context.Context, n Notification) error
}

// RequestHandlerFunc adapts a function to the RequestHandler interface.
type RequestHandlerFunc func(ctx context.Context, r Request) (any, error)

func (f RequestHandlerFunc) Handle(ctx context.Context, r Request) (any, error) {
	return f(ctx, r)
}

// NotificationHandlerFunc adapts a function to the NotificationHandler interface.
type NotificationHandlerFunc func(ctx context.Context, n Notification) error

func (f NotificationHandlerFunc) Handle(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// RequestHandlerOf handles requests of type R producing a response of type T.
// This is the form concrete handler authors implement; the registry adapts it
// to the untyped RequestHandler the core dispatches through.
type RequestHandlerOf[R Request, T any] interface {
	Handle(ctx context.Context, r R) (T, error)
}

// NotificationHandlerOf handles notifications of type N.
type NotificationHandlerOf[N Notification] interface {
	Handle(ctx context.Context, n N) error
}
