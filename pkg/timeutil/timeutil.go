// Package timeutil resuelve fechas de entrada y rangos de día en UTC.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha sin hora aceptado en la API.
const DateLayout = "2006-01-02"

// LongDateLayout formato largo para documentos impresos.
const LongDateLayout = "January 2, 2006"

// ParseDate acepta "YYYY-MM-DD" (medianoche UTC) o RFC 3339 y devuelve el instante en UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD o RFC 3339", s)
	}
	return t.UTC(), nil
}

// StartOfDay medianoche UTC del día de t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay último milisegundo del día de t (23:59:59.999 UTC).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// Range rango inclusivo; un extremo nil significa abierto.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Contains informa si t cae dentro del rango.
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// ParseRange construye [StartOfDay(start), EndOfDay(end)]; cualquiera de los dos puede venir vacío.
func ParseRange(start, end string) (Range, error) {
	var r Range
	if strings.TrimSpace(start) != "" {
		t, err := ParseDate(start)
		if err != nil {
			return Range{}, err
		}
		from := StartOfDay(t)
		r.From = &from
	}
	if strings.TrimSpace(end) != "" {
		t, err := ParseDate(end)
		if err != nil {
			return Range{}, err
		}
		to := EndOfDay(t)
		r.To = &to
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return Range{}, fmt.Errorf("rango inválido: startDate posterior a endDate")
	}
	return r, nil
}

// FormatLongDate "January 2, 2006" en UTC, para que el día no cambie según la zona del lector.
func FormatLongDate(t time.Time) string {
	return t.UTC().Format(LongDateLayout)
}
