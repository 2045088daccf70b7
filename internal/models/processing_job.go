package models

import "time"

type CombineJob struct {
	ID        string         `json:"id"`
	Request   CombineRequest `json:"request"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Image     string         `json:"image,omitempty"`
	URL       string         `json:"url,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type JobAccepted struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
