package rabbitmq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/rabbitmq"
	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

type fakePublisher struct {
	msgs []rabbitmq.PubMsg
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, m rabbitmq.PubMsg) error {
	f.msgs = append(f.msgs, m)
	return f.err
}

type routed struct{ ID string }

func (routed) Topic() string { return "audit" }

type plain struct{ Name string }

type unserializable struct{ Ch chan int }

func TestRabbit_Forward(t *testing.T) {
	fp := &fakePublisher{}
	ad := rabbitmq.New(fp)

	opts := cmed.ForwardOptions{Key: "k", Headers: map[string]string{"h1": "v1"}}
	if err := ad.Forward(t.Context(), routed{ID: "1"}, opts); err != nil {
		t.Fatalf("forward: %v", err)
	}

	if len(fp.msgs) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(fp.msgs))
	}

	m := fp.msgs[0]
	if m.Exchange != "notifications" || m.RoutingKey != "audit" {
		t.Fatalf("routing mismatch: %s/%s", m.Exchange, m.RoutingKey)
	}

	if len(m.Body) == 0 {
		t.Fatalf("expected body")
	}

	if m.Headers["h1"] != "v1" || m.Headers["key"] != "k" || m.Headers["message-id"] == "" {
		t.Fatalf("headers missing or wrong: %+v", m.Headers)
	}

	if err := ad.Forward(t.Context(), plain{Name: "n"}, cmed.ForwardOptions{}); err != nil {
		t.Fatalf("forward plain: %v", err)
	}

	if fp.msgs[1].RoutingKey != "notifications.plain" {
		t.Fatalf("routing mismatch: %s", fp.msgs[1].RoutingKey)
	}
}

func TestRabbit_Errors(t *testing.T) {
	ad := rabbitmq.New(nil)
	if err := ad.Forward(t.Context(), plain{}, cmed.ForwardOptions{}); !errors.Is(err, merr.ErrForwardFailed) {
		t.Fatalf("want ErrForwardFailed, got %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	fp := &fakePublisher{}
	ad = rabbitmq.New(fp)

	if err := ad.Forward(ctx, plain{}, cmed.ForwardOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	if err := ad.Forward(t.Context(), unserializable{Ch: make(chan int)}, cmed.ForwardOptions{}); !errors.Is(err, merr.ErrSerializationFailed) {
		t.Fatalf("want ErrSerializationFailed, got %v", err)
	}

	cause := errors.New("channel closed")
	fp.err = cause

	err := ad.Forward(t.Context(), plain{}, cmed.ForwardOptions{})
	if !errors.Is(err, merr.ErrForwardFailed) || !errors.Is(err, cause) {
		t.Fatalf("want joined forward failure, got %v", err)
	}
}

func TestNewWithAMQPConn_RequiresURL(t *testing.T) {
	_, _, err := rabbitmq.NewWithAMQPConn(rabbitmq.Config{})
	if !errors.Is(err, merr.ErrForwardFailed) {
		t.Fatalf("want ErrForwardFailed, got %v", err)
	}
}
