package kafka_test

import (
	"context"
	"errors"
	"testing"

	"github.com/next-trace/scg-mediator/adapters/kafka"
	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

type fakeWriter struct {
	writes []struct {
		topic   string
		key     []byte
		value   []byte
		headers map[string]string
	}
	err error
}

func (f *fakeWriter) Write(topic string, key, value []byte, headers map[string]string) error {
	f.writes = append(f.writes, struct {
		topic   string
		key     []byte
		value   []byte
		headers map[string]string
	}{topic, key, value, headers})

	return f.err
}

type routed struct{ ID string }

func (routed) Topic() string { return "audit" }

type plain struct{ Name string }

type unserializable struct{ Ch chan int }

func TestKafka_Forward(t *testing.T) {
	fw := &fakeWriter{}
	ad := kafka.New(fw)

	opts := cmed.ForwardOptions{Key: "k", Headers: map[string]string{"h1": "v1"}}
	if err := ad.Forward(t.Context(), routed{ID: "1"}, opts); err != nil {
		t.Fatalf("forward: %v", err)
	}

	if len(fw.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(fw.writes))
	}

	w := fw.writes[0]
	if w.topic != "audit" {
		t.Fatalf("topic mismatch: %s", w.topic)
	}

	if string(w.key) != "k" {
		t.Fatalf("key mismatch: %q", w.key)
	}

	if len(w.value) == 0 {
		t.Fatalf("expected value body")
	}

	if w.headers["h1"] != "v1" || w.headers["message-id"] == "" {
		t.Fatalf("headers missing or wrong: %+v", w.headers)
	}

	if err := ad.Forward(t.Context(), plain{Name: "n"}, cmed.ForwardOptions{TopicOverride: "other"}); err != nil {
		t.Fatalf("forward override: %v", err)
	}

	if fw.writes[1].topic != "other" {
		t.Fatalf("topic mismatch: %s", fw.writes[1].topic)
	}
}

func TestKafka_Errors(t *testing.T) {
	ad := kafka.New(nil)
	if err := ad.Forward(t.Context(), plain{}, cmed.ForwardOptions{}); !errors.Is(err, merr.ErrForwardFailed) {
		t.Fatalf("want ErrForwardFailed, got %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	fw := &fakeWriter{}
	ad = kafka.New(fw)

	if err := ad.Forward(ctx, plain{}, cmed.ForwardOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	if err := ad.Forward(t.Context(), unserializable{Ch: make(chan int)}, cmed.ForwardOptions{}); !errors.Is(err, merr.ErrSerializationFailed) {
		t.Fatalf("want ErrSerializationFailed, got %v", err)
	}

	cause := errors.New("broker unreachable")
	fw.err = cause

	err := ad.Forward(t.Context(), plain{}, cmed.ForwardOptions{})
	if !errors.Is(err, merr.ErrForwardFailed) || !errors.Is(err, cause) {
		t.Fatalf("want joined forward failure, got %v", err)
	}
}
