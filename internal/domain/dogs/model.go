package dogs

import "strings"

// Status is the adoption lifecycle state of a dog. Stored and serialized
// in enum-name form.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAdopted   Status = "ADOPTED"
)

// ParseStatus maps a query-string value to a Status. Matching is
// case-insensitive after trimming; unrecognized values report ok=false
// and callers apply no filter.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return StatusAvailable, true
	case "adopted":
		return StatusAdopted, true
	default:
		return "", false
	}
}

// Dog is an adoptable animal record. Breed carries the breed name,
// resolved by the repository at read time (explicit join, no lazy
// relation).
type Dog struct {
	ID      int64
	Name    string
	BreedID int64
	Breed   string

	Age         *int
	Description *string
	Gender      *string

	Status Status
}

// Filter restricts List results. The zero value applies no constraint.
type Filter struct {
	// Breed matches the breed name exactly, case-sensitive. An unknown
	// name yields an empty result, not an error.
	Breed string
	// Status restricts to one lifecycle state when non-nil.
	Status *Status
}
