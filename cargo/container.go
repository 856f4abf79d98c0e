package cargo

import "fmt"

// Container is a shipping container used for holding or transporting goods.
type Container struct {
	cargoBase

	containerTyp ContainerType
}

// NewContainer creates a container and registers it with the given registry.
// The identifier must be non-negative and unused.
func NewContainer(
	reg *Registry,
	id int,
	destination string,
	containerTyp ContainerType,
) (*Container, error) {
	c := &Container{
		cargoBase:    cargoBase{id: id, destination: destination},
		containerTyp: containerTyp,
	}

	if err := reg.Register(id, c); err != nil {
		return nil, fmt.Errorf("cannot create container: %w", err)
	}

	return c, nil
}

// Type returns the container tag of this cargo.
func (c *Container) Type() ContainerType {
	return c.containerTyp
}

func (c *Container) String() string {
	return fmt.Sprintf("Container %d to %s [%s]",
		c.id, c.destination, c.containerTyp)
}
