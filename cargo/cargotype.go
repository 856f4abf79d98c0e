package cargo

import "fmt"

// BulkCargoType tags the commodity a piece of bulk cargo consists of.
type BulkCargoType int

// The closed set of bulk commodity tags.
const (
	Coal BulkCargoType = iota
	Grain
	Minerals
	Oil
	OtherBulk
)

var bulkCargoTypeNames = map[BulkCargoType]string{
	Coal:      "COAL",
	Grain:     "GRAIN",
	Minerals:  "MINERALS",
	Oil:       "OIL",
	OtherBulk: "OTHER",
}

func (t BulkCargoType) String() string {
	name, ok := bulkCargoTypeNames[t]
	if !ok {
		return fmt.Sprintf("BulkCargoType(%d)", int(t))
	}

	return name
}

// ParseBulkCargoType converts the token used in encodings back to a
// BulkCargoType.
func ParseBulkCargoType(token string) (BulkCargoType, error) {
	for t, name := range bulkCargoTypeNames {
		if name == token {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown bulk cargo type %q", token)
}

// ContainerType tags the construction of a shipping container.
type ContainerType int

// The closed set of container tags.
const (
	Standard ContainerType = iota
	OpenTop
	Reefer
	Tanker
	OtherContainer
)

var containerTypeNames = map[ContainerType]string{
	Standard:       "STANDARD",
	OpenTop:        "OPEN_TOP",
	Reefer:         "REEFER",
	Tanker:         "TANKER",
	OtherContainer: "OTHER",
}

func (t ContainerType) String() string {
	name, ok := containerTypeNames[t]
	if !ok {
		return fmt.Sprintf("ContainerType(%d)", int(t))
	}

	return name
}

// ParseContainerType converts the token used in encodings back to a
// ContainerType.
func ParseContainerType(token string) (ContainerType, error) {
	for t, name := range containerTypeNames {
		if name == token {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown container type %q", token)
}
