package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Zero(t, DistanceMeters(25.0330, 121.5654, 25.0330, 121.5654))
	})

	t.Run("approximate known distance", func(t *testing.T) {
		// Taipei 101 to Taipei Main Station is roughly 5 km
		dist := DistanceMeters(25.0330, 121.5654, 25.0478, 121.5170)
		assert.InDelta(t, 5150, dist, 300)
	})

	t.Run("symmetric", func(t *testing.T) {
		forward := DistanceMeters(10, 20, 30, 40)
		backward := DistanceMeters(30, 40, 10, 20)
		assert.InDelta(t, forward, backward, 0.001)
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "meters", meters: 850, expected: "850m"},
		{name: "rounded meters", meters: 999.4, expected: "999m"},
		{name: "kilometers", meters: 1200, expected: "1.2km"},
		{name: "large distance", meters: 15500, expected: "15.5km"},
		{name: "zero", meters: 0, expected: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.meters))
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{name: "origin", lat: 0, lon: 0, valid: true},
		{name: "boundary north east", lat: 90, lon: 180, valid: true},
		{name: "boundary south west", lat: -90, lon: -180, valid: true},
		{name: "latitude too high", lat: 90.1, lon: 0, valid: false},
		{name: "latitude too low", lat: -90.1, lon: 0, valid: false},
		{name: "longitude too high", lat: 0, lon: 180.1, valid: false},
		{name: "longitude too low", lat: 0, lon: -180.1, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCoordinates(tt.lat, tt.lon))
		})
	}
}
