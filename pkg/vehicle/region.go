package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownKind   = errors.New("unknown vehicle kind")
)

// Region tags the market a vehicle was built for.
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

func (r Region) String() string {
	return string(r)
}

// ParseRegion maps a case-insensitive region name to a Region.
func ParseRegion(s string) (Region, error) {
	switch Region(strings.ToUpper(strings.TrimSpace(s))) {
	case RegionUS:
		return RegionUS, nil
	case RegionEU:
		return RegionEU, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
}

// Kind names a member of a vehicle family.
type Kind string

const (
	KindCar        Kind = "car"
	KindMotorcycle Kind = "motorcycle"
)

// ParseKind maps a case-insensitive kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindCar:
		return KindCar, nil
	case KindMotorcycle:
		return KindMotorcycle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
