package boxer

import "errors"

var (
	// ErrNotFound indicates the requested boxer does not exist.
	ErrNotFound = errors.New("boxer not found")
	// ErrNameTaken indicates a registration attempt with a duplicate name.
	ErrNameTaken = errors.New("boxer name already exists")
	// ErrInvalidSortKey indicates an unsupported leaderboard sort key.
	ErrInvalidSortKey = errors.New("invalid leaderboard sort key")
)

// ValidationError describes a rejected registration attribute.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
