package geo

import (
	"testing"

	domainerrors "pklradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	t.Run("zero distance for identical points", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 0, DistanceKm(-6.2, 106.8, -6.2, 106.8), 1e-9)
	})

	t.Run("one degree of latitude along a meridian", func(t *testing.T) {
		t.Parallel()

		// pi * 6371 / 180
		assert.InDelta(t, 111.19492664455873, DistanceKm(0, 0, 1, 0), 1e-9)
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		t.Parallel()

		d1 := DistanceKm(-6.2, 106.8, -6.9, 107.6)
		d2 := DistanceKm(-6.9, 107.6, -6.2, 106.8)
		assert.InDelta(t, d1, d2, 1e-12)
	})

	t.Run("300 meters along a meridian", func(t *testing.T) {
		t.Parallel()

		// 0.3 km / 111.19492664... km per degree
		d := DistanceM(-6.2, 106.8, -6.2+0.0026979565, 106.8)
		assert.InDelta(t, 300, d, 0.01)
	})
}

func TestDistanceM(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1000*DistanceKm(0, 0, 0, 1), DistanceM(0, 0, 0, 1), 1e-6)
}

func TestValidateCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "valid jakarta", lat: -6.2, lon: 106.8, wantErr: false},
		{name: "valid boundary", lat: 90, lon: -180, wantErr: false},
		{name: "latitude too high", lat: 90.1, lon: 0, wantErr: true},
		{name: "latitude too low", lat: -90.1, lon: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lon: 180.1, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -180.1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCoordinate(tt.lat, tt.lon)
			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBoundAround(t *testing.T) {
	t.Parallel()

	t.Run("contains a point right at the radius edge", func(t *testing.T) {
		t.Parallel()

		// ~300 m north of the center
		bound := BoundAround(-6.2, 106.8, 300)
		assert.True(t, InBound(bound, -6.2+0.0026979565, 106.8))
	})

	t.Run("excludes a point far outside the padded radius", func(t *testing.T) {
		t.Parallel()

		// ~2 km north of the center, well past 300 m * padding
		bound := BoundAround(-6.2, 106.8, 300)
		assert.False(t, InBound(bound, -6.2+0.018, 106.8))
	})
}
