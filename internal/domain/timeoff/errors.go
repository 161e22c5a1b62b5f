package timeoff

import "errors"

var (
	ErrInvalidMonth = errors.New("invalid month key")
)
