package fontconv

import "fmt"

type ErrConverterNotFound struct {
	name string
}

func NewErrConverterNotFound(name string) *ErrConverterNotFound {
	return &ErrConverterNotFound{name: name}
}

func (e *ErrConverterNotFound) Error() string {
	return fmt.Sprintf("%s not found. Please install it using: npm install -g %s", e.name, e.name)
}

type ErrConvertFailed struct {
	name string
	err  error
}

func NewErrConvertFailed(name string, err error) *ErrConvertFailed {
	return &ErrConvertFailed{name: name, err: err}
}

func (e *ErrConvertFailed) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.name, e.err)
}

func (e *ErrConvertFailed) Unwrap() error {
	return e.err
}

var _ error = (*ErrConverterNotFound)(nil)
var _ error = (*ErrConvertFailed)(nil)
