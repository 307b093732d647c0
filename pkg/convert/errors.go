package convert

import "errors"

var (
	ErrMalformedJWT    = errors.New("malformed JWT")
	ErrInvalidObjectID = errors.New("invalid object id")
	ErrFetchImage      = errors.New("failed to fetch image")
)
