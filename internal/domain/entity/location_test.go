package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocation(t *testing.T) {
	//Arrange
	coordinates := []float64{30.0, -1.95}

	//Act
	loc, err := NewLocation(coordinates, "Kigali")

	//Assert
	assert.Nil(t, err)
	assert.Equal(t, 30.0, loc.Longitude())
	assert.Equal(t, -1.95, loc.Latitude())
	assert.Equal(t, []float64{30.0, -1.95}, loc.Coordinates())
	assert.Equal(t, "Kigali", loc.Address())
}

func TestNewLocation_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		coordinates []float64
	}{
		{"Should return error when coordinates are empty", nil},
		{"Should return error when only one coordinate is given", []float64{30.0}},
		{"Should return error when three coordinates are given", []float64{30.0, -1.95, 7.0}},
		{"Should return error when longitude is out of range", []float64{181.0, 0.0}},
		{"Should return error when latitude is out of range", []float64{0.0, 91.0}},
		{"Should return error when a coordinate is NaN", []float64{math.NaN(), 0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocation(tt.coordinates, "")

			assert.ErrorIs(t, err, ErrInvalidLocation)
		})
	}
}

func TestLocation_WithAddress(t *testing.T) {
	loc, err := NewLocation([]float64{30.0, -1.95}, "")
	assert.Nil(t, err)

	resolved := loc.WithAddress(UnknownAddress)

	assert.Equal(t, UnknownAddress, resolved.Address())
	assert.Equal(t, "", loc.Address())
	assert.Equal(t, loc.Coordinates(), resolved.Coordinates())
}

func TestRestoreLocation_NaNSentinelFailsValidation(t *testing.T) {
	loc := RestoreLocation(math.NaN(), math.NaN(), UnknownAddress)

	assert.ErrorIs(t, loc.Validate(), ErrInvalidLocation)
}
