package entity

import "math"

// Location is a (longitude, latitude) pair in the order the wire format and
// the geo index use. Address is advisory metadata and never feeds a
// distance computation.
type Location struct {
	longitude float64
	latitude  float64
	address   string
}

const UnknownAddress = "Unknown Location"

func NewLocation(coordinates []float64, address string) (Location, error) {
	if len(coordinates) != 2 {
		return Location{}, ErrInvalidLocation
	}

	loc := Location{
		longitude: coordinates[0],
		latitude:  coordinates[1],
		address:   address,
	}

	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// RestoreLocation rebuilds a stored location without re-validating; the
// store only ever holds values that passed NewLocation.
func RestoreLocation(longitude, latitude float64, address string) Location {
	return Location{longitude: longitude, latitude: latitude, address: address}
}

func (l Location) Validate() error {
	if math.IsNaN(l.longitude) || math.IsNaN(l.latitude) {
		return ErrInvalidLocation
	}
	if l.longitude < -180 || l.longitude > 180 {
		return ErrInvalidLocation
	}
	if l.latitude < -90 || l.latitude > 90 {
		return ErrInvalidLocation
	}
	return nil
}

func (l Location) Longitude() float64 { return l.longitude }
func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Address() string    { return l.address }

func (l Location) Coordinates() []float64 {
	return []float64{l.longitude, l.latitude}
}

// WithAddress returns a copy carrying the resolved address. Used by the
// best-effort reverse geocoding step.
func (l Location) WithAddress(address string) Location {
	l.address = address
	return l
}
