package dictset

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrMissingEntry   = errors.New("missing entry")
)

func invalidOperand(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidOperand, format, args...)
}

func missingEntry(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMissingEntry, format, args...)
}
