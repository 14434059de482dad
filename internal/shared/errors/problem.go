// Package errors provides RFC 7807 Problem Details for HTTP APIs.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is an RFC 7807 problem document.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return p.Title + ": " + p.Detail
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension returns a copy carrying key. The extensions map is never shared
// with the receiver, so templates stay untouched.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

const (
	TypeValidation    = "/problems/validation-error"
	TypeNotFound      = "/problems/not-found"
	TypeConflict      = "/problems/conflict"
	TypeUnprocessable = "/problems/unprocessable-entity"
	TypeInternal      = "/problems/internal-error"
)

// Templates the orders API responds with. Title is the status text.
var (
	ErrValidation    = problemFor(http.StatusBadRequest, TypeValidation)
	ErrNotFound      = problemFor(http.StatusNotFound, TypeNotFound)
	ErrConflict      = problemFor(http.StatusConflict, TypeConflict)
	ErrUnprocessable = problemFor(http.StatusUnprocessableEntity, TypeUnprocessable)
	ErrInternal      = problemFor(http.StatusInternalServerError, TypeInternal)
)

func problemFor(status int, problemType string) ProblemDetail {
	return ProblemDetail{Type: problemType, Title: http.StatusText(status), Status: status}
}

// NewCodedProblem returns template with detail and a machine-readable "code"
// extension clients branch on.
func NewCodedProblem(template ProblemDetail, code, detail string) ProblemDetail {
	return template.WithDetail(detail).WithExtension("code", code)
}

// NewNotFoundProblem reports a missing resource by type and identifier.
func NewNotFoundProblem(resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s %v not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}
