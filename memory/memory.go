package memory

import (
	"github.com/next-trace/scg-mediator/adapters/inmemory"
	cmed "github.com/next-trace/scg-mediator/contract/mediator"
	"github.com/next-trace/scg-mediator/mediator"
	"github.com/next-trace/scg-mediator/registry"
)

// New constructs a mediator wired to a fresh registry and an in-memory
// forwarder, returning the mediator contract, the registry for bindings, and a
// cleanup function that closes the mediator.
func New() (cmed.Mediator, *registry.Registry, func()) { //nolint:ireturn
	reg := registry.New()
	m := mediator.New(reg, mediator.WithForwarder(inmemory.New()))
	cleanup := func() { _ = m.Close() }

	return m, reg, cleanup
}
