package dto

// ErrorResponse cuerpo de error HTTP: {"code": "...", "error": "..."}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// ListResponse envoltura de listados.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la envoltura; items nil se serializa como [].
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// DeleteResponse resultado de un borrado, con el conteo de dependientes eliminados en cascada.
type DeleteResponse struct {
	ID                 string `json:"id"`
	DeletedJobs        int64  `json:"deletedJobs,omitempty"`
	DeletedTimeEntries int64  `json:"deletedTimeEntries,omitempty"`
}
