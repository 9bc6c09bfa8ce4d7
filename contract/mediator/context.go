package mediator

import "context"

// Context is re-exported for convenience in handler signatures.
// It avoids importing context in user packages when referencing mediator types.
type Context = context.Context

// HeaderPropagator abstracts injecting tracing context into outbound headers.
// Implementations may bridge to OpenTelemetry or any other propagation standard,
// keeping forwarder adapters decoupled from concrete tracing libraries.
// Implementors should mutate the provided headers map by inserting keys that
// carry the context across process boundaries. Implementations must be safe for
// concurrent use.
type HeaderPropagator interface {
	Inject(ctx context.Context, headers map[string]string)
}

// NopHeaderPropagator is a no-op implementation useful for tests or when tracing is disabled.
type NopHeaderPropagator struct{}

func (NopHeaderPropagator) Inject(ctx context.Context, headers map[string]string) {
	_ = ctx
	_ = headers
}
