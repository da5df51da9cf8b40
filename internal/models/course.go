package models

// Course is owned by exactly one account. Owner carries the owning
// account's public fields for embedding in responses.
type Course struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	OwnerID     int64         `json:"userId"`
	Owner       PublicAccount `json:"user"`
}

// OwnedBy reports whether the account may mutate or delete the course.
// Both the update and delete paths go through this predicate.
func (c *Course) OwnedBy(accountID int64) bool {
	return c.OwnerID == accountID
}
