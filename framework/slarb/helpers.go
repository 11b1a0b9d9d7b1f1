package slarb

import (
	"errors"
	"fmt"
	"strings"
)

// Status names accepted by Slarb and ParseStatus.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrUnknownStatus is returned for a status name other than "success" or
// "error".
var ErrUnknownStatus = errors.New("slarb: unknown status")

// ParseStatus maps "success" to true and "error" to false. Case and
// surrounding whitespace are ignored.
func ParseStatus(name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StatusSuccess:
		return true, nil
	case StatusError:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
}

// Slarb builds a complete response in one call.
//
//	res, err := slarb.Slarb("success", http.StatusCreated, "User created", user)
func Slarb(status string, httpCode int, message string, data any) (Response, error) {
	ok, err := ParseStatus(status)
	if err != nil {
		return Response{}, err
	}

	b := Error()
	if ok {
		b = Success()
	}

	b, err = b.WithHTTPCode(httpCode)
	if err != nil {
		return Response{}, err
	}

	return b.WithMessage(message).WithData(data).Build(), nil
}
