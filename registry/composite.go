package registry

import (
	"errors"
	"fmt"
	"reflect"

	merr "github.com/next-trace/scg-mediator/contract/errors"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
)

// Composite merges several Resolvers into one, e.g. per-subsystem registries
// or a bridge to an external container. Request resolution enforces the
// exactly-one invariant across all sources at lookup time: two sources claiming
// the same request type is a wiring defect, not a tie to break silently.
type Composite struct {
	sources []cmed.Resolver
}

var _ cmed.Resolver = (*Composite)(nil)

// NewComposite constructs a Composite over the given sources.
func NewComposite(sources ...cmed.Resolver) *Composite {
	return &Composite{sources: append([]cmed.Resolver(nil), sources...)}
}

// ResolveOne returns the single handler for the request type across all
// sources. More than one match yields ErrAmbiguousHandler.
func (c *Composite) ResolveOne(t reflect.Type) (cmed.RequestHandler, error) {
	var (
		found cmed.RequestHandler
		n     int
	)

	for _, src := range c.sources {
		h, err := src.ResolveOne(t)
		if err != nil {
			if errors.Is(err, merr.ErrHandlerNotFound) {
				continue
			}

			return nil, err
		}

		found = h
		n++
	}

	switch n {
	case 0:
		return nil, fmt.Errorf("resolve %s: %w", t.String(), merr.ErrHandlerNotFound)
	case 1:
		return found, nil
	default:
		return nil, fmt.Errorf("resolve %s: %d candidates: %w", t.String(), n, merr.ErrAmbiguousHandler)
	}
}

// ResolveMany concatenates the handlers of all sources, in source order.
func (c *Composite) ResolveMany(t reflect.Type) ([]cmed.NotificationHandler, error) {
	var all []cmed.NotificationHandler

	for _, src := range c.sources {
		hs, err := src.ResolveMany(t)
		if err != nil {
			return nil, err
		}

		all = append(all, hs...)
	}

	return all, nil
}
