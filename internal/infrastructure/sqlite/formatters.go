package sqlite

import (
	"database/sql"
	"time"
)

// timeLayout ancho fijo en UTC: la comparación de texto coincide con la cronológica.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// timeCol asocia una columna de texto leída con su destino time.Time.
type timeCol struct {
	raw string
	dst *time.Time
}

func parseTimeCols(cols ...timeCol) error {
	for _, c := range cols {
		t, err := parseTime(c.raw)
		if err != nil {
			return err
		}
		*c.dst = t
	}
	return nil
}
