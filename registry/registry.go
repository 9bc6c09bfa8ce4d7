package registry

import (
	"fmt"
	"reflect"
	"sync"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

// Registry is an explicit, type-keyed handler registry. It is the default
// Resolver implementation: every handler is bound up front against the concrete
// request or notification type it serves, no runtime scanning involved.
//
// Registry is concurrency-safe and contains no global state.
type Registry struct {
	mu  sync.RWMutex
	req map[reflect.Type]cmed.RequestHandler
	not map[reflect.Type][]cmed.NotificationHandler
}

var _ cmed.Resolver = (*Registry)(nil)

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{
		req: make(map[reflect.Type]cmed.RequestHandler),
		not: make(map[reflect.Type][]cmed.NotificationHandler),
	}
}

// BindRequestOf registers a handler for a specific request type.
// Provide a zero value of the request type via sample. Duplicate bindings are rejected.
func (r *Registry) BindRequestOf(sample any, h cmed.RequestHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(sample)
	if _, exists := r.req[t]; exists {
		return fmt.Errorf("bind request %s: %w", t.String(), merr.ErrHandlerExists)
	}

	r.req[t] = h

	return nil
}

// BindNotificationOf registers a notification handler for a specific
// notification type. Multiple handlers are allowed.
func (r *Registry) BindNotificationOf(sample any, h cmed.NotificationHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf(sample)
	r.not[t] = append(r.not[t], h)

	return nil
}

// ResolveOne returns the single handler bound for the request type.
func (r *Registry) ResolveOne(t reflect.Type) (cmed.RequestHandler, error) {
	r.mu.RLock()
	h, ok := r.req[t]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("resolve %s: %w", t.String(), merr.ErrHandlerNotFound)
	}

	return h, nil
}

// ResolveMany returns all handlers bound for the notification type.
// An empty result is not an error.
func (r *Registry) ResolveMany(t reflect.Type) ([]cmed.NotificationHandler, error) {
	r.mu.RLock()
	hs := append([]cmed.NotificationHandler(nil), r.not[t]...)
	r.mu.RUnlock()

	return hs, nil
}

// BindRequest registers a typed handler for request type R producing T.
// Duplicate bindings are rejected. The wrapper guards against a resolver ever
// feeding the handler a value of the wrong type.
func BindRequest[R cmed.Request, T any](r *Registry, h cmed.RequestHandlerOf[R, T]) error {
	var zero R

	return r.BindRequestOf(zero, cmed.RequestHandlerFunc(func(ctx cmed.Context, v cmed.Request) (any, error) {
		req, ok := v.(R)
		if !ok {
			return nil, fmt.Errorf("send %s: %w", reflect.TypeOf(v).String(), merr.ErrHandlerTypeMismatch)
		}

		return h.Handle(ctx, req)
	}))
}

type requestFunc[R cmed.Request, T any] func(ctx cmed.Context, req R) (T, error)

func (f requestFunc[R, T]) Handle(ctx cmed.Context, req R) (T, error) { return f(ctx, req) }

// BindRequestFunc registers a plain transform function as the handler for R,
// so simple handlers need no struct type of their own.
func BindRequestFunc[R cmed.Request, T any](r *Registry, fn func(ctx cmed.Context, req R) (T, error)) error {
	return BindRequest[R, T](r, requestFunc[R, T](fn))
}

type notificationFunc[N cmed.Notification] func(ctx cmed.Context, n N) error

func (f notificationFunc[N]) Handle(ctx cmed.Context, n N) error { return f(ctx, n) }

// BindNotificationFunc registers a plain function as a handler for N.
func BindNotificationFunc[N cmed.Notification](r *Registry, fn func(ctx cmed.Context, n N) error) error {
	return BindNotification[N](r, notificationFunc[N](fn))
}

// BindNotification registers a typed handler for notification type N.
// Multiple handlers are allowed.
func BindNotification[N cmed.Notification](r *Registry, h cmed.NotificationHandlerOf[N]) error {
	var zero N

	return r.BindNotificationOf(zero, cmed.NotificationHandlerFunc(func(ctx cmed.Context, v cmed.Notification) error {
		n, ok := v.(N)
		if !ok {
			return fmt.Errorf("publish %s: %w", reflect.TypeOf(v).String(), merr.ErrHandlerTypeMismatch)
		}

		return h.Handle(ctx, n)
	}))
}
