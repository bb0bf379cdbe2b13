package submissions

import (
	"encoding/json"
	"time"
)

// MaxSubmissions is the retention cap of the in-memory store.
const MaxSubmissions = 100

// Submission is a single lead: a property address plus optional contact details.
type Submission struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// TimestampLayout is the wire form of Submission.Timestamp: UTC with a fixed
// three-digit millisecond fraction.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON writes the timestamp in TimestampLayout so every record has the
// same width regardless of trailing zero milliseconds.
func (s Submission) MarshalJSON() ([]byte, error) {
	type plain Submission
	return json.Marshal(struct {
		plain
		Timestamp string `json:"timestamp"`
	}{
		plain:     plain(s),
		Timestamp: s.Timestamp.UTC().Format(TimestampLayout),
	})
}

// NewSubmission is a Submission that has not been assigned an ID yet.
type NewSubmission struct {
	Address   string
	Phone     string
	Email     string
	Timestamp time.Time
	UserAgent string
}

// CreateSubmissionRequest is the request body of the intake endpoint.
type CreateSubmissionRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Validate checks the only required field. An absent or empty address is
// rejected; any other value, blanks included, is accepted as typed. Phone and
// email are free-form.
func (r *CreateSubmissionRequest) Validate() error {
	if r.Address == "" {
		return ErrMissingAddress
	}
	return nil
}

// CreateSubmissionResponse acknowledges an accepted submission. The generated
// ID is deliberately not returned.
type CreateSubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListSubmissionsResponse is the admin listing payload.
type ListSubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
	Count       int          `json:"count"`
	Message     string       `json:"message"`
}
