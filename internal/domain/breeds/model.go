package breeds

// Breed is reference data. Rows come from seed/import and are never
// mutated through the API.
type Breed struct {
	ID   int64
	Name string
}
