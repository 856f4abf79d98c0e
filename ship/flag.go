package ship

import "fmt"

// NauticalFlag is the maritime signal flag a ship is flying. Flags
// communicate the ship's status to the port and decide its admission
// priority.
type NauticalFlag int

const (
	// FlagNovember is the default flag for a ship with no specific status.
	FlagNovember NauticalFlag = iota

	// FlagBravo signals the ship is carrying dangerous goods.
	FlagBravo

	// FlagWhiskey signals the ship requires medical assistance.
	FlagWhiskey

	// FlagHotel signals the ship is ready to dock.
	FlagHotel
)

var nauticalFlagNames = map[NauticalFlag]string{
	FlagNovember: "NOVEMBER",
	FlagBravo:    "BRAVO",
	FlagWhiskey:  "WHISKEY",
	FlagHotel:    "HOTEL",
}

func (f NauticalFlag) String() string {
	name, ok := nauticalFlagNames[f]
	if !ok {
		return fmt.Sprintf("NauticalFlag(%d)", int(f))
	}

	return name
}

// ParseNauticalFlag converts the token used in encodings back to a
// NauticalFlag.
func ParseNauticalFlag(token string) (NauticalFlag, error) {
	for f, name := range nauticalFlagNames {
		if name == token {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown nautical flag %q", token)
}
