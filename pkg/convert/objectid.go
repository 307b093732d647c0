package convert

import (
	"fmt"
	"strconv"
	"time"
)

// ObjectIDToDate returns the creation time embedded in the first four bytes
// of a MongoDB ObjectID.
func ObjectIDToDate(id string) (time.Time, error) {
	if len(id) < 8 {
		return time.Time{}, fmt.Errorf("%w: %q is shorter than 8 hex digits", ErrInvalidObjectID, id)
	}
	secs, err := strconv.ParseUint(id[:8], 16, 32)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidObjectID, err)
	}
	return time.Unix(int64(secs), 0), nil
}
