// Package cargo defines the cargo variants moved through a port: bulk
// commodities and shipping containers.
//
// Cargo is identified by a non-negative integer that is unique within the
// cargo registry the item was created against. Cargo is immutable after
// creation.
package cargo

import "github.com/harborlab/portsim/registry"

// Cargo is a piece of cargo transported via ship or land transport.
type Cargo interface {
	// ID returns the identifier of this piece of cargo.
	ID() int

	// Destination returns the destination port of this piece of cargo.
	Destination() string
}

// Registry is the identity registry cargo is created against.
type Registry = registry.Registry[Cargo]

// NewRegistry creates an empty cargo registry.
func NewRegistry() *Registry {
	return registry.New[Cargo]()
}

type cargoBase struct {
	id          int
	destination string
}

func (c cargoBase) ID() int {
	return c.id
}

func (c cargoBase) Destination() string {
	return c.destination
}
