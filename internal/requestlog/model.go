package requestlog

import (
	"time"

	"resume-dashboard/internal/shared/util"
)

// MaxEntries is how many requests are retained; older rows are trimmed on insert.
const MaxEntries = 1000

const maxJobTitle = 100

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)

// Entry records one analysis request. SessionKey is a hash, never the raw session ID.
type Entry struct {
	ID           int64     `json:"id"`
	RequestID    string    `json:"requestId"`
	SessionKey   string    `json:"sessionKey"`
	FileName     string    `json:"fileName"`
	JobTitle     string    `json:"jobTitle"`
	SizeBytes    int64     `json:"sizeBytes"`
	Status       string    `json:"status"`
	MatchScore   *int      `json:"matchScore,omitempty"`
	DurationMs   float64   `json:"durationMs"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e Entry) normalized() Entry {
	e.JobTitle = util.Truncate(e.JobTitle, maxJobTitle)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e
}
