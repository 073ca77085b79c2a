// Package stack implements a fixed-capacity LIFO stack of integers
// backed by a single array allocated at construction.
package stack

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type BoundedStack struct {
	storage []int
	// size is the index of the next free slot in storage.
	size int
}

// New returns an empty stack able to hold capacity elements.
func New(capacity int) (*BoundedStack, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity must be positive, got %d", capacity)
	}
	return &BoundedStack{
		storage: make([]int, capacity),
	}, nil
}

// Push adds value to the top of the stack. A full stack is left untouched
// and ErrStackOverflow is returned.
func (s *BoundedStack) Push(value int) error {
	if s.IsFull() {
		return ErrStackOverflow
	}
	s.storage[s.size] = value
	s.size++
	return nil
}

// Pop removes and returns the most recently pushed element.
func (s *BoundedStack) Pop() (int, error) {
	if s.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	s.size--
	return s.storage[s.size], nil
}

func (s *BoundedStack) Top() (int, error) {
	if s.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	return s.storage[s.size-1], nil
}

// Peek returns a copy of the live contents, bottom first.
func (s *BoundedStack) Peek() []int {
	if s.size == 0 {
		return []int{}
	}
	return slices.Clone(s.storage[:s.size])
}

func (s *BoundedStack) Len() int {
	return s.size
}

func (s *BoundedStack) Cap() int {
	return len(s.storage)
}

func (s *BoundedStack) IsEmpty() bool {
	return s.size == 0
}

func (s *BoundedStack) IsFull() bool {
	return s.size == len(s.storage)
}
