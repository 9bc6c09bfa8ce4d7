package rabbitmq

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

type PubMsg struct {
	Exchange   string
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, m PubMsg) error
}

type Adapter struct {
	Publisher  Publisher
	Propagator cmed.HeaderPropagator // optional, for context propagation into headers
}

var _ cmed.Forwarder = (*Adapter)(nil)

func New(p Publisher) *Adapter { return &Adapter{Publisher: p} }

// NewWithPropagator allows configuring a HeaderPropagator for context propagation.
func NewWithPropagator(p Publisher, hp cmed.HeaderPropagator) *Adapter {
	return &Adapter{Publisher: p, Propagator: hp}
}

// Forward serializes the notification to JSON and publishes it on the
// notifications exchange with a routing key derived from the options, the
// notification's Topic, or its type name.
func (a *Adapter) Forward(ctx context.Context, n cmed.Notification, opts cmed.ForwardOptions) error {
	if err := a.ready(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("rabbitmq forward serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	// copy headers to avoid mutating caller-provided map
	hdrs := forwardHeaders(opts)
	if a.Propagator != nil {
		a.Propagator.Inject(ctx, hdrs)
	}

	msg := PubMsg{
		Exchange:   notificationExchange,
		RoutingKey: routingFor(n, opts),
		Body:       body,
		Headers:    hdrs,
	}

	if err := a.Publisher.Publish(ctx, msg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("rabbitmq forward publish: %w", errors.Join(merr.ErrForwardFailed, err))
	}

	return nil
}

func (a *Adapter) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Publisher == nil {
		return fmt.Errorf("rabbitmq forward: %w", merr.ErrForwardFailed)
	}

	return nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	return name
}

func routingFor(n cmed.Notification, o cmed.ForwardOptions) string {
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
