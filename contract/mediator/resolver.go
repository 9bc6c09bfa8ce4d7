package mediator

import "reflect"

// Resolver is the dependency-resolution strategy the dispatch core consumes.
// The core never instantiates handlers itself; an external system (an explicit
// registry, a DI bridge, a composite of several sources) supplies them through
// this interface. Both lookups are pure: no side effects observable to the core.
//
// ResolveOne must return at most one handler. Returning ErrHandlerNotFound
// signals that nothing is registered for the type; returning ErrAmbiguousHandler
// signals a wiring defect where more than one source claims the same request
// type. A resolver must never hand back a handler for the wrong type; such
// misconfiguration surfaces as ErrHandlerTypeMismatch at invocation instead.
//
// ResolveMany may return an empty slice; that is not an error.
type Resolver interface {
	ResolveOne(t reflect.Type) (RequestHandler, error)
	ResolveMany(t reflect.Type) ([]NotificationHandler, error)
}
