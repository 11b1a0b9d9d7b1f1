// Package slarb builds standardized JSON API responses.
//
// Every response carries the same body shape:
//
//	{"status": true, "message": "Request Successful", "data": null}
//
// together with an HTTP status code that must agree with the status flag.
//
// # Builder
//
// A Builder is an immutable value. Each With* call returns a new Builder,
// so a partially configured builder can be shared and extended freely.
//
//	res := slarb.Success().
//	    WithMessage("User created").
//	    WithData(user).
//	    Build()
//
//	b, err := slarb.Error().WithHTTPCode(http.StatusNotFound)
//	if err != nil {
//	    // err wraps ErrInvalidHTTPCode
//	}
//	res := b.WithMessage("User not found").Build()
//
// Literal codes known to be valid can go through Must:
//
//	res := slarb.Must(slarb.Success().WithHTTPCode(http.StatusCreated)).Build()
//
// # Validation
//
// WithHTTPCode runs Validate before accepting a code:
//
//   - the code must be a registered HTTP status code
//   - a success response rejects every code >= 400
//   - an error response rejects codes in [200, 400); 1xx codes are allowed
//
// # Shorthand
//
//	res, err := slarb.Slarb("error", 422, "Invalid payload", errs)
package slarb
