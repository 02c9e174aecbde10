package shared

import (
	"github.com/google/uuid"
)

// UserSnapshot is the slice of the user directory a conversation embeds at
// creation time. The directory itself is owned by an external service.
type UserSnapshot struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
}
