package repository

import "context"

// Repositories agrupa los puertos de un mismo almacén.
type Repositories struct {
	Company     CompanyRepository
	Clients     ClientRepository
	Jobs        JobRepository
	TimeEntries TimeEntryRepository
	Invoices    InvoiceRepository
}

// TxRunner ejecuta fn con repositorios atados a una transacción; si fn devuelve error se hace Rollback.
// Dentro de fn solo deben usarse los repos recibidos.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(repos Repositories) error) error
}
