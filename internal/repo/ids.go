package repo

import (
	"time"

	"github.com/google/uuid"
)

// stampNew assigns a fresh time-ordered id and creation timestamps.
func stampNew(id *string, createdAt, updatedAt *time.Time) {
	*id = uuid.Must(uuid.NewV7()).String()
	now := time.Now().UTC().Truncate(time.Microsecond)
	*createdAt = now
	*updatedAt = now
}
