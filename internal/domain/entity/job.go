package entity

import "time"

// Job unidad de trabajo de un cliente; se factura de forma independiente.
type Job struct {
	ID           JobID
	ClientID     ClientID
	Name         string
	JobNumber    string // número de trabajo / orden de compra del cliente
	ContactName  string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
