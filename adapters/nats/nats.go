package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

const notificationPrefix = "notifications."

// Client is a minimal NATS-like publisher interface decoupled from any concrete library.
// Users can provide a wrapper around their NATS connection to satisfy this.
type Client interface {
	// Publish publishes a message to a subject with optional headers.
	Publish(subject string, data []byte, headers map[string]string) error
}

// Adapter implements cmed.Forwarder using an injected NATS-like Client.
type Adapter struct {
	Client     Client
	Propagator cmed.HeaderPropagator // optional, for context propagation into headers
}

// Ensure Adapter implements the contract.
var _ cmed.Forwarder = (*Adapter)(nil)

// New creates a new NATS adapter instance with the provided client.
func New(c Client) *Adapter { return &Adapter{Client: c} }

// NewWithPropagator allows configuring a HeaderPropagator for context propagation.
func NewWithPropagator(c Client, hp cmed.HeaderPropagator) *Adapter {
	return &Adapter{Client: c, Propagator: hp}
}

// Forward serializes the notification to JSON and publishes it to the subject
// derived from the options, the notification's Topic, or its type name.
func (a *Adapter) Forward(ctx context.Context, n cmed.Notification, opts cmed.ForwardOptions) error {
	if err := a.ready(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("nats forward serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	headers := forwardHeaders(opts)
	if a.Propagator != nil {
		a.Propagator.Inject(ctx, headers)
	}

	if err := a.Client.Publish(subjectFor(n, opts), body, headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats forward publish: %w", errors.Join(merr.ErrForwardFailed, err))
	}

	return nil
}

func (a *Adapter) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Client == nil {
		return fmt.Errorf("nats forward: %w", merr.ErrForwardFailed)
	}

	return nil
}

// helpers

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" { // unnamed (e.g., map/struct literal)
		name = t.String()
	}

	return name
}

func subjectFor(n cmed.Notification, o cmed.ForwardOptions) string {
	if o.TopicOverride != "" {
		return o.TopicOverride
	}

	if r, ok := n.(cmed.Routable); ok {
		return r.Topic()
	}

	return notificationPrefix + typeName(n)
}

func forwardHeaders(o cmed.ForwardOptions) map[string]string {
	h := make(map[string]string, len(o.Headers)+2)
	for k, v := range o.Headers {
		h[k] = v
	}

	if o.Key != "" {
		h["key"] = o.Key
	}

	h["message-id"] = uuid.NewString()

	return h
}
