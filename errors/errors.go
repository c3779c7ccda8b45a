package errors

import "strings"

// ers is the concrete implementation of Error: a code, a message, and the
// parent causes it was built with.
type ers struct {
	c uint16
	e string
	p []Error
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) Error() string {
	if len(e.p) == 0 {
		return e.e
	}

	parts := make([]string, 0, len(e.p)+1)
	parts = append(parts, e.e)
	for _, p := range e.p {
		parts = append(parts, p.Error())
	}
	return strings.Join(parts, ": ")
}
