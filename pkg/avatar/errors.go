package avatar

import "errors"

var (
	ErrEmptyPalette = errors.New("color palette is empty")
	ErrNoRenderer   = errors.New("no renderer enabled")
)
