package subm

import "time"

const (
	// NumItems is how many ranked items every list carries.
	NumItems = 5

	MaxCategoryLength = 100
	MaxItemLength     = 200
)

// Submission is one stored top-5 list. Immutable once created.
type Submission struct {
	ID        int
	Category  string
	Items     [NumItems]string
	CreatedAt time.Time
}
