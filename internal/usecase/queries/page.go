package queries

import (
	"math"

	"seller-catalog/internal/pkg/errs"
)

var ErrInvalidPage = errs.Mark(errs.Newf("offset must be between 0 and %d", math.MaxInt32), errs.ErrValidation)

// Paging bounds list requests.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Paging) Normalize(limit, offset int) (int32, int32, error) {
	if offset < 0 || offset > math.MaxInt32 {
		return 0, 0, ErrInvalidPage
	}
	if limit <= 0 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	// #nosec G115 -- both values are checked against math.MaxInt32 above
	return int32(limit), int32(offset), nil
}
