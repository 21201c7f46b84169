package outbound

import "context"

// Geocoder resolves coordinates to an opaque address string. Failures are
// expected; callers fall back to entity.UnknownAddress and move on.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}
