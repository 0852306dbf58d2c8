package types

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPageNotFound     = errors.New("page not found")

	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownCategory = fmt.Errorf("%w: unknown category", ErrInvalidInput)
)

// IsNotFound reports whether err refers to a resource that does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrPageNotFound)
}
