package stack

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
)
