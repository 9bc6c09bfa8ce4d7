package mediator_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
	"github.com/next-trace/scg-mediator/mediator"
	"github.com/next-trace/scg-mediator/registry"
)

type echo struct{ Message string }

type echoHandler struct {
	mu  sync.Mutex
	out io.Writer
}

func (h *echoHandler) Handle(ctx context.Context, r echo) (string, error) {
	h.mu.Lock()
	fmt.Fprintln(h.out, r.Message)
	h.mu.Unlock()

	return r.Message, nil
}

// echoed wraps an already-handled echo request; its strategy issues one
// follow-up request whose message carries the repeat count.
type echoed struct {
	Request echo
	Repeats int
}

func (e echoed) Strategy() cmed.Strategy {
	return cmed.StrategyFunc(func(ctx context.Context, s cmed.Sender) error {
		_, err := s.Send(ctx, echo{Message: fmt.Sprintf("%s%d", e.Request.Message, e.Repeats)})
		return err
	})
}

type plainNote struct{}

func Test_StrategyHandler_IssuesFollowUpRequest(t *testing.T) {
	reg := registry.New()
	m := mediator.New(reg)

	var sink bytes.Buffer

	if err := registry.BindRequest[echo, string](reg, &echoHandler{out: &sink}); err != nil {
		t.Fatalf("bind request: %v", err)
	}

	if err := reg.BindNotificationOf(echoed{}, mediator.NewStrategyHandler(m)); err != nil {
		t.Fatalf("bind notification: %v", err)
	}

	n := echoed{Request: echo{Message: "Ping"}, Repeats: 2}
	if err := m.Publish(t.Context(), n); err != nil {
		t.Fatalf("publish: %v", err)
	}

	found := false

	sc := bufio.NewScanner(&sink)
	for sc.Scan() {
		if sc.Text() == "Ping2" {
			found = true
		}
	}

	if !found {
		t.Fatalf("output sink missing follow-up line, got %q", sink.String())
	}
}

func Test_StrategyHandler_MissingStrategy(t *testing.T) {
	h := mediator.NewStrategyHandler(mediator.New(registry.New()))

	if err := h.Handle(t.Context(), plainNote{}); !errors.Is(err, merr.ErrStrategyMissing) {
		t.Fatalf("want ErrStrategyMissing, got %v", err)
	}
}

func Test_StrategyHandler_FollowUpFailurePropagates(t *testing.T) {
	reg := registry.New()
	m := mediator.New(reg)

	// No handler bound for echo: the strategy's follow-up Send must surface
	// the resolution failure through Publish.
	if err := reg.BindNotificationOf(echoed{}, mediator.NewStrategyHandler(m)); err != nil {
		t.Fatalf("bind notification: %v", err)
	}

	err := m.Publish(t.Context(), echoed{Request: echo{Message: "Ping"}, Repeats: 2})
	if !errors.Is(err, merr.ErrHandlerNotFound) {
		t.Fatalf("want ErrHandlerNotFound, got %v", err)
	}
}
