package unirange

import "fmt"

type ErrUnsupportedLanguage struct {
	language string
}

func NewErrUnsupportedLanguage(language string) *ErrUnsupportedLanguage {
	return &ErrUnsupportedLanguage{language: language}
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.language)
}

func (e *ErrUnsupportedLanguage) Language() string {
	return e.language
}

type ErrInvalidInterval string

func NewErrInvalidInterval(token string) *ErrInvalidInterval {
	e := ErrInvalidInterval(token)
	return &e
}

func (e ErrInvalidInterval) Error() string {
	return fmt.Sprintf(`invalid interval: "%s"`, string(e))
}

type ErrUnknownScript string

func NewErrUnknownScript(label string) *ErrUnknownScript {
	e := ErrUnknownScript(label)
	return &e
}

func (e ErrUnknownScript) Error() string {
	return fmt.Sprintf(`unknown script group: "%s"`, string(e))
}

var _ error = (*ErrUnsupportedLanguage)(nil)
var _ error = (*ErrInvalidInterval)(nil)
var _ error = (*ErrUnknownScript)(nil)
