package pagination

import (
	"fmt"
	"strconv"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
)

// DefaultLimit is the page size used by the list endpoint when the client
// does not supply one.
const DefaultLimit = 10

// Params is an offset/limit pagination window. A Limit of 0 means the window
// is unbounded (used by search, which is unpaginated unless asked otherwise).
type Params struct {
	Offset int
	Limit  int
}

// ParseParams parses the offset and limit query parameters, each from its own
// key. Absent values fall back to offset 0 and defaultLimit. A maxLimit > 0
// caps the page size.
//
// Malformed numbers, negative offsets and non-positive explicit limits are
// rejected with apperrors.ErrInvalidQuery rather than silently clamped, so a
// bad window never produces an unpredictable page.
func ParseParams(offsetStr, limitStr string, defaultLimit, maxLimit int) (Params, error) {
	params := Params{Offset: 0, Limit: defaultLimit}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return Params{}, fmt.Errorf("%w: offset must be an integer", apperrors.ErrInvalidQuery)
		}
		if offset < 0 {
			return Params{}, fmt.Errorf("%w: offset must not be negative", apperrors.ErrInvalidQuery)
		}
		params.Offset = offset
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return Params{}, fmt.Errorf("%w: limit must be an integer", apperrors.ErrInvalidQuery)
		}
		if limit <= 0 {
			return Params{}, fmt.Errorf("%w: limit must be greater than 0", apperrors.ErrInvalidQuery)
		}
		params.Limit = limit
	}

	if maxLimit > 0 && params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	return params, nil
}
