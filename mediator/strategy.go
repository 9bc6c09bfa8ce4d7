package mediator

import (
	"context"
	"fmt"
	"reflect"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

// StrategyHandler is a generic notification handler for any notification that
// carries a Strategy. It extracts the strategy and applies it with the
// mediator's Sender, so one notification can trigger follow-up requests the
// dispatch machinery knows nothing about ahead of time.
//
// Bind it against each notification type that implements StrategyProvider.
// Because fan-out is concurrent, the strategy runs with no ordering guarantee
// relative to sibling handlers of the same notification.
type StrategyHandler struct {
	sender cmed.Sender
}

var _ cmed.NotificationHandler = (*StrategyHandler)(nil)

// NewStrategyHandler constructs a StrategyHandler issuing follow-ups through s.
func NewStrategyHandler(s cmed.Sender) *StrategyHandler {
	return &StrategyHandler{sender: s}
}

// Handle applies the notification's strategy. A notification without a
// strategy is a wiring defect surfaced as ErrStrategyMissing.
func (h *StrategyHandler) Handle(ctx context.Context, n cmed.Notification) error {
	p, ok := n.(cmed.StrategyProvider)
	if !ok {
		return fmt.Errorf("strategy %s: %w", reflect.TypeOf(n).String(), merr.ErrStrategyMissing)
	}

	st := p.Strategy()
	if st == nil {
		return fmt.Errorf("strategy %s: nil: %w", reflect.TypeOf(n).String(), merr.ErrStrategyMissing)
	}

	return st.Apply(ctx, h.sender)
}
