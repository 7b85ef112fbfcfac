package errors

import (
	"fmt"
)

var ErrBadDocument = fmt.Errorf("bad document")
var ErrBadConfiguration = fmt.Errorf("bad configuration")
var ErrCyclicRelationship = fmt.Errorf("cyclic relationship")
var ErrMaxDepthExceeded = fmt.Errorf("max depth exceeded")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadDocumentError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadDocument,
	}
}

func NewBadConfigurationError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadConfiguration,
	}
}

func NewCyclicRelationshipError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrCyclicRelationship,
	}
}

func NewMaxDepthExceededError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrMaxDepthExceeded,
	}
}
