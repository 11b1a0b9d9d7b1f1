package slarb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidHTTPCode is matched by every *InvalidHTTPCodeError.
var ErrInvalidHTTPCode = errors.New("slarb: invalid http code")

// Violation identifies why a code was rejected.
type Violation int

const (
	// UnknownCode means the code is not in the status registry.
	UnknownCode Violation = iota + 1
	// Mismatch means the code contradicts the response status.
	Mismatch
)

func (v Violation) String() string {
	switch v {
	case UnknownCode:
		return "unknown code"
	case Mismatch:
		return "status mismatch"
	default:
		return "unknown violation"
	}
}

// InvalidHTTPCodeError is returned by Validate and Builder.WithHTTPCode.
type InvalidHTTPCodeError struct {
	Code int
	Kind Violation
	// Expected is "success" or "error" for a Mismatch, empty otherwise.
	Expected string
}

func (e *InvalidHTTPCodeError) Error() string {
	if e.Kind == Mismatch {
		return fmt.Sprintf("The HTTP status code %d is not valid for a %s request.", e.Code, e.Expected)
	}
	return fmt.Sprintf("The HTTP status code %d is not valid.", e.Code)
}

// Is lets errors.Is(err, ErrInvalidHTTPCode) match.
func (e *InvalidHTTPCodeError) Is(target error) bool {
	return target == ErrInvalidHTTPCode
}

// Validate checks that code is a registered status code consistent with
// status. A success response must use a code below 400. An error response
// must not use a code in [200, 400).
func Validate(status bool, code int) error {
	if !IsKnownCode(code) {
		return &InvalidHTTPCodeError{Code: code, Kind: UnknownCode}
	}

	if status && code >= http.StatusBadRequest {
		return &InvalidHTTPCodeError{Code: code, Kind: Mismatch, Expected: statusLabel(status)}
	}

	if !status && code >= http.StatusOK && code < http.StatusBadRequest {
		return &InvalidHTTPCodeError{Code: code, Kind: Mismatch, Expected: statusLabel(status)}
	}

	return nil
}

func statusLabel(status bool) string {
	if status {
		return StatusSuccess
	}
	return StatusError
}
