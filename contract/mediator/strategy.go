package mediator

import "context"

// Strategy is a behavior object carried inside a notification's payload. It
// encapsulates what additional work should happen when the notification is
// handled, without the dispatch machinery knowing about that work ahead of
// time. Apply receives a Sender so the strategy can issue follow-up requests.
//
// A strategy is constructed alongside its notification, consumed once by the
// generic strategy handler, then discarded. Because notification fan-out is
// concurrent, Apply may run concurrently with unrelated handler work and must
// tolerate that.
type Strategy interface {
	Apply(ctx context.Context, s Sender) error
}

// StrategyProvider is implemented by notification types that carry a Strategy.
// The generic strategy handler dispatches on this capability.
type StrategyProvider interface {
	Strategy() Strategy
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(ctx context.Context, s Sender) error

func (f StrategyFunc) Apply(ctx context.Context, s Sender) error { return f(ctx, s) }
