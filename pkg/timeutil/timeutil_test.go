package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-01T20:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
	_, err = ParseDate("  ")
	assert.Error(t, err)
}

func TestParseRange_FinInclusivo(t *testing.T) {
	r, err := ParseRange("2024-01-01", "2024-01-01")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseRange_ExtremosOpcionales(t *testing.T) {
	soloInicio, err := ParseRange("2024-03-01", "")
	require.NoError(t, err)
	assert.Nil(t, soloInicio.To)
	assert.True(t, soloInicio.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, soloInicio.Contains(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))

	soloFin, err := ParseRange("", "2024-03-01")
	require.NoError(t, err)
	assert.Nil(t, soloFin.From)
	assert.True(t, soloFin.Contains(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))

	vacio, err := ParseRange("", "")
	require.NoError(t, err)
	assert.True(t, vacio.Contains(time.Now()))
}

func TestParseRange_Invertido(t *testing.T) {
	_, err := ParseRange("2024-02-01", "2024-01-01")
	assert.Error(t, err)
}

func TestFormatLongDate_UsaUTC(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	// 2024-03-04 22:00 en Bogotá ya es 2024-03-05 en UTC
	assert.Equal(t, "March 5, 2024", FormatLongDate(time.Date(2024, 3, 4, 22, 0, 0, 0, bogota)))
}
