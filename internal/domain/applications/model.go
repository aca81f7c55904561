package applications

import (
	"strings"
	"time"
)

// Status is the staff review state of an adoption application. Stored in
// enum-name form; API responses render the display form (see Display).
type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusCompleted   Status = "COMPLETED"
)

// Display returns the human-readable form used in API responses.
func (s Status) Display() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusUnderReview:
		return "Under Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseStatus accepts the name form ("UNDER_REVIEW") or the display form
// ("Under Review"), case-insensitively.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "submitted":
		return StatusSubmitted, true
	case "under_review", "under review":
		return StatusUnderReview, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	case "completed":
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Application is a request by a member of the public to adopt a dog.
// DogName is denormalized from the dogs table at read time; it is empty
// when the dog row is gone.
type Application struct {
	ID      int64
	DogID   int64
	DogName string

	ApplicantName string
	Email         string
	Phone         string
	Message       string

	Status      Status
	SubmittedAt time.Time
	UpdatedAt   time.Time
}
