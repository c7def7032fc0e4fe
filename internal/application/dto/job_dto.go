package dto

import "time"

// CreateJobRequest body para POST /api/jobs.
type CreateJobRequest struct {
	ClientID     string `json:"clientId"`
	Name         string `json:"name"`
	JobNumber    string `json:"jobNumber,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// UpdateJobRequest body para PUT /api/jobs/:id (campos opcionales).
type UpdateJobRequest struct {
	ClientID     *string `json:"clientId"`
	Name         *string `json:"name"`
	JobNumber    *string `json:"jobNumber"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
}

// JobResponse job en respuestas.
type JobResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	Name         string    `json:"name"`
	JobNumber    string    `json:"jobNumber"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
