package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gatewayArch = &Coordinates{Latitude: 40.7128, Longitude: -74.0060}

func TestEvaluateFixed(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := FixedTime("09:30").Evaluate(NewDate(2025, time.June, 2), loc, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, loc, got.Location())
}

func TestEvaluateFixedMalformed(t *testing.T) {
	_, err := FixedTime("25:00").Evaluate(NewDate(2025, time.June, 2), time.UTC, nil)
	assert.Error(t, err)
}

func TestEvaluateSolar(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	date := NewDate(2025, time.June, 21)

	dawn, err := SolarTime(SpecDawn, 0).Evaluate(date, loc, gatewayArch)
	require.NoError(t, err)
	dusk, err := SolarTime(SpecDusk, 0).Evaluate(date, loc, gatewayArch)
	require.NoError(t, err)
	assert.True(t, dawn.Before(dusk))

	// Offsets shift the solar base by whole minutes.
	shifted, err := SolarTime(SpecDawn, 45).Evaluate(date, loc, gatewayArch)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, shifted.Sub(dawn))

	early, err := SolarTime(SpecDusk, -90).Evaluate(date, loc, gatewayArch)
	require.NoError(t, err)
	assert.Equal(t, -90*time.Minute, early.Sub(dusk))
}

func TestEvaluateSolarWithoutCoordinates(t *testing.T) {
	_, err := SolarTime(SpecDawn, 0).Evaluate(NewDate(2025, time.June, 21), time.UTC, nil)
	assert.ErrorIs(t, err, ErrGeoDataMissing)
}

func TestEvaluateQualitative(t *testing.T) {
	for _, mode := range []string{SpecAppointment, SpecCall} {
		_, err := Qualitative(mode).Evaluate(NewDate(2025, time.June, 21), time.UTC, gatewayArch)
		assert.ErrorIs(t, err, ErrQualitativeTime, "mode %s", mode)
	}
}

func TestSpecKindPredicates(t *testing.T) {
	assert.True(t, SolarTime(SpecDawn, 0).IsSolar())
	assert.True(t, SolarTime(SpecDusk, 0).IsSolar())
	assert.False(t, FixedTime("09:00").IsSolar())
	assert.True(t, Qualitative(SpecCall).IsQualitative())
	assert.True(t, Qualitative(SpecAppointment).IsQualitative())
	assert.False(t, FixedTime("09:00").IsQualitative())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{input: "00:00", minutes: 0},
		{input: "09:00", minutes: 540},
		{input: "23:59", minutes: 1439},
		{input: " 12:30 ", minutes: 750},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, got, "input %q", tt.input)
	}
}
