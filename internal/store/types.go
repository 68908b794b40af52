package store

import (
	"time"

	"github.com/google/uuid"
)

// Run is one roadmap generation run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Career      string     `json:"career"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Artifact is one stored stage output.
type Artifact struct {
	RunID     uuid.UUID `json:"run_id"`
	Step      string    `json:"step"`
	Category  string    `json:"category"`
	Content   []byte    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
