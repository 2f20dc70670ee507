package poolphysics

import "errors"

var (
	ErrInvalidRadius   = errors.New("radius must be positive")
	ErrInvalidSize     = errors.New("size must be positive on both axes")
	ErrNilCollider     = errors.New("body needs a collider")
	ErrNotCircle       = errors.New("body collider must be a circle")
	ErrUnsupportedPair = errors.New("unsupported collider pair")
)
