package kafka

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

// Writer is a minimal Kafka-like writer interface.
// Users can adapt franz-go or any other client to this.
type Writer interface {
	Write(topic string, key, value []byte, headers map[string]string) error
}

// Adapter implements cmed.Forwarder using an injected Writer.
type Adapter struct {
	Writer Writer
}

var _ cmed.Forwarder = (*Adapter)(nil)

// New creates a new Kafka adapter instance with the provided writer.
func New(w Writer) *Adapter { return &Adapter{Writer: w} }

// Forward serializes the notification to JSON and writes it to the topic
// derived from the options, the notification's Topic, or its type name.
// The forward key, when set, becomes the record key for partitioning.
func (a *Adapter) Forward(ctx context.Context, n cmed.Notification, opts cmed.ForwardOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Writer == nil {
		return fmt.Errorf("kafka forward: %w", merr.ErrForwardFailed)
	}

	val, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("kafka forward serialize: %w", errors.Join(merr.ErrSerializationFailed, err))
	}

	var key []byte
	if opts.Key != "" {
		key = []byte(opts.Key)
	}

	if err = a.Writer.Write(topicFor(n, opts), key, val, forwardHeaders(opts)); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka forward write: %w", errors.Join(merr.ErrForwardFailed, err))
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

func topicFor(n cmed.Notification, o cmed.ForwardOptions) string {
	if o.TopicOverride != "" {
		return o.TopicOverride
	}

	if r, ok := n.(cmed.Routable); ok {
		return r.Topic()
	}

	return notificationPrefix + typeName(n)
}

func forwardHeaders(o cmed.ForwardOptions) map[string]string {
	h := make(map[string]string, len(o.Headers)+1)
	for k, v := range o.Headers {
		h[k] = v
	}

	h["message-id"] = uuid.NewString()

	return h
}
