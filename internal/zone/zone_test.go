package zone_test

import (
	"testing"

	"go-swifteats-api/internal/geo"
	"go-swifteats-api/internal/zone"

	"github.com/stretchr/testify/assert"
)

func TestLocate_Georgetown(t *testing.T) {
	v := zone.Locate(geo.Point{Lat: 6.8013, Lon: -58.1551})

	assert.True(t, v.Allowed)
	assert.Equal(t, "Georgetown", v.Zone)
	assert.Empty(t, v.Message)
}

func TestLocate_OverlapPrefersGeorgetown(t *testing.T) {
	// Inside both the Georgetown and East Bank Demerara boxes; first
	// match wins.
	v := zone.Locate(geo.Point{Lat: 6.80, Lon: -58.18})

	assert.True(t, v.Allowed)
	assert.Equal(t, "Georgetown", v.Zone)
}

func TestLocate_EastBankDemerara(t *testing.T) {
	v := zone.Locate(geo.Point{Lat: 6.72, Lon: -58.22})

	assert.True(t, v.Allowed)
	assert.Equal(t, "East Bank Demerara", v.Zone)
}

func TestLocate_EastCoastDemerara(t *testing.T) {
	v := zone.Locate(geo.Point{Lat: 6.82, Lon: -58.00})

	assert.True(t, v.Allowed)
	assert.Equal(t, "East Coast Demerara", v.Zone)
}

func TestLocate_OutOfArea(t *testing.T) {
	v := zone.Locate(geo.Point{Lat: 7.50, Lon: -58.00})

	assert.False(t, v.Allowed)
	assert.Empty(t, v.Zone)
	assert.Contains(t, v.Message, "Georgetown")
	assert.Contains(t, v.Message, "East Bank Demerara")
	assert.Contains(t, v.Message, "East Coast Demerara")
}

func TestLocate_BoxEdgesInclusive(t *testing.T) {
	v := zone.Locate(geo.Point{Lat: 6.85, Lon: -58.12})

	assert.True(t, v.Allowed)
	assert.Equal(t, "Georgetown", v.Zone)
}

func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{"Georgetown", "East Bank Demerara", "East Coast Demerara"},
		zone.Names(),
	)
}
