package entity

// Identificadores tipados. El almacén los guarda como texto sin integridad referencial;
// las verificaciones de existencia las hacen los casos de uso.
type (
	ClientID    string
	JobID       string
	TimeEntryID string
	InvoiceID   string
)

func (id ClientID) String() string    { return string(id) }
func (id JobID) String() string       { return string(id) }
func (id TimeEntryID) String() string { return string(id) }
func (id InvoiceID) String() string   { return string(id) }
