package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

// Invoker is the dispatch continuation a Behavior wraps.
type Invoker func(ctx context.Context, r cmed.Request) (any, error)

// Behavior wraps request dispatch with cross-cutting concerns.
// Examples: validation, logging, telemetry, circuit breakers, retries.
// Behaviors are executed in registration order.
type Behavior func(next Invoker) Invoker

// Mediator routes requests to exactly one handler and notifications to zero or
// more handlers, both resolved through the injected Resolver. The mediator
// holds no handler state itself; each Send/Publish is an independent unit of
// work, safe for concurrent use.
type Mediator struct {
	res       cmed.Resolver
	behaviors []Behavior
	fwd       cmed.Forwarder
	logger    *slog.Logger
}

var _ cmed.Mediator = (*Mediator)(nil)

// Option configures a Mediator instance.
type Option func(*Mediator)

// WithBehavior registers global request behaviors.
func WithBehavior(bs ...Behavior) Option {
	return func(m *Mediator) { m.behaviors = append(m.behaviors, bs...) }
}

// WithForwarder attaches an outbound Forwarder. Notifications implementing
// Routable are mirrored to it after local fan-out.
func WithForwarder(f cmed.Forwarder) Option {
	return func(m *Mediator) { m.fwd = f }
}

// WithLogger attaches a structured logger. A nil logger keeps the mediator silent.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mediator) { m.logger = l }
}

// New constructs a Mediator over the given Resolver.
func New(res cmed.Resolver, opts ...Option) *Mediator {
	m := &Mediator{res: res}
	for _, o := range opts {
		o(m)
	}

	return m
}

// Send resolves the single handler for the request's concrete type and invokes
// it through the behavior chain. Resolution failures carry ErrHandlerNotFound
// or ErrAmbiguousHandler; a handler's own failure is returned to the caller
// unchanged so it stays distinguishable from a resolution failure.
func (m *Mediator) Send(ctx context.Context, r cmed.Request) (any, error) {
	return m.send(ctx, r)
}

// SendWith executes a request with additional per-call behaviors, appended
// after the global ones.
func (m *Mediator) SendWith(ctx context.Context, r cmed.Request, bs ...Behavior) (any, error) {
	return m.send(ctx, r, bs...)
}

func (m *Mediator) send(ctx context.Context, r cmed.Request, extra ...Behavior) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("send: nil request: %w", merr.ErrHandlerNotFound)
	}

	t := reflect.TypeOf(r)

	h, err := m.res.ResolveOne(t)
	if err != nil {
		return nil, err
	}

	m.debug(ctx, "mediator send", "request", t.String())

	// Combine global and per-call behaviors
	chain := make([]Behavior, 0, len(m.behaviors)+len(extra))
	chain = append(chain, m.behaviors...)
	chain = append(chain, extra...)

	// Build chain so the first registered behavior runs first
	final := Invoker(h.Handle)
	for i := len(chain) - 1; i >= 0; i-- {
		final = chain[i](final)
	}

	return final(ctx, r)
}

// Send dispatches a typed request and asserts the response type.
func Send[R cmed.Request, T any](ctx context.Context, m *Mediator, r R) (T, error) {
	var zero T

	res, err := m.Send(ctx, r)
	if err != nil {
		return zero, err
	}

	out, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("send %s: %w", reflect.TypeOf(r).String(), merr.ErrHandlerTypeMismatch)
	}

	return out, nil
}

// Publish resolves all handlers for the notification's concrete type and
// invokes each in its own goroutine. It completes only once every handler has
// completed, aggregating failures with errors.Join; a failing handler never
// cancels its siblings. Zero handlers is a successful no-op. A cancelled
// context stops the waiting and surfaces ctx.Err(); handlers already started
// keep running and their side effects are not rolled back.
//
// Notifications implementing Routable are additionally mirrored to the
// configured Forwarder after local fan-out; forward failures join the result.
func (m *Mediator) Publish(ctx context.Context, n cmed.Notification) error {
	if n == nil {
		return nil
	}

	t := reflect.TypeOf(n)

	hs, err := m.res.ResolveMany(t)
	if err != nil {
		return err
	}

	var errs []error

	if len(hs) > 0 {
		m.debug(ctx, "mediator publish", "notification", t.String(), "handlers", len(hs))

		done := make(chan error, len(hs))
		for _, h := range hs {
			go func() { done <- h.Handle(ctx, n) }()
		}

		for range hs {
			select {
			case herr := <-done:
				if herr != nil {
					m.warn(ctx, "notification handler failed", "notification", t.String(), "error", herr)
					errs = append(errs, herr)
				}
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			}
		}
	}

	if _, ok := n.(cmed.Routable); ok && m.fwd != nil {
		if ferr := m.fwd.Forward(ctx, n, cmed.ForwardOptions{}); ferr != nil {
			errs = append(errs, ferr)
		}
	}

	return errors.Join(errs...)
}

// Forward mirrors a notification to the configured Forwarder without invoking
// local handlers.
func (m *Mediator) Forward(ctx context.Context, n cmed.Notification, opts cmed.ForwardOptions) error {
	if m.fwd == nil {
		return fmt.Errorf("forward %T: %w", n, merr.ErrForwardNotConfigured)
	}

	return m.fwd.Forward(ctx, n, opts)
}

// Chain sends requests in order and stops on the first error.
func (m *Mediator) Chain(ctx context.Context, reqs ...cmed.Request) error {
	for _, r := range reqs {
		if _, err := m.send(ctx, r); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op; the mediator owns no resources. It satisfies the contract
// interface so wiring code can treat the mediator like other closable infrastructure.
func (m *Mediator) Close() error { return nil }

func (m *Mediator) debug(ctx context.Context, msg string, args ...any) {
	if m.logger != nil {
		m.logger.DebugContext(ctx, msg, args...)
	}
}

func (m *Mediator) warn(ctx context.Context, msg string, args ...any) {
	if m.logger != nil {
		m.logger.WarnContext(ctx, msg, args...)
	}
}
