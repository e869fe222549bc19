package registry

import "errors"

var (
	ErrEmptyName     = errors.New("registry entry name is empty")
	ErrDuplicateName = errors.New("registry entry already exists")
	ErrNilHandler    = errors.New("registry entry handler is nil")
)
