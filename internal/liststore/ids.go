package liststore

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// newItemID returns a random UUID, or a time+random string if the system
// random source is unavailable.
func newItemID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return fallbackID(time.Now())
}

func fallbackID(now time.Time) string {
	return fmt.Sprintf("item-%d-%x", now.UnixMilli(), rand.Uint64())
}
