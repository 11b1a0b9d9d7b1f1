package slarb

import "net/http"

// Body keys of every built response.
const (
	KeyStatus  = "status"
	KeyMessage = "message"
	KeyData    = "data"
)

// Default messages set by the factories.
const (
	SuccessMessage    = "Request Successful"
	ErrorMessage      = "Request Failed"
	ProcessingMessage = "Request is processing"
)

// Builder accumulates the parts of a response. The zero value is not
// useful; start from Success, Error or Respond.
type Builder struct {
	status   bool
	httpCode int
	message  string
	data     any
}

// Success starts a successful response: 200 OK, "Request Successful".
func Success() Builder {
	return Builder{
		status:   true,
		httpCode: http.StatusOK,
		message:  SuccessMessage,
	}
}

// Error starts a failed response: 400 Bad Request, "Request Failed".
func Error() Builder {
	return Builder{
		status:   false,
		httpCode: http.StatusBadRequest,
		message:  ErrorMessage,
	}
}

// Respond starts a response with an explicit status and the 100 Continue
// placeholder code. Callers are expected to set the code and message later.
func Respond(status bool) Builder {
	return Builder{
		status:   status,
		httpCode: http.StatusContinue,
		message:  ProcessingMessage,
	}
}

// WithMessage returns a copy of b with the message replaced.
func (b Builder) WithMessage(text string) Builder {
	b.message = text
	return b
}

// WithData returns a copy of b with the payload replaced. nil is allowed.
func (b Builder) WithData(data any) Builder {
	b.data = data
	return b
}

// WithHTTPCode returns a copy of b using code. If code fails Validate for
// b's status, b is returned unchanged along with an *InvalidHTTPCodeError.
func (b Builder) WithHTTPCode(code int) (Builder, error) {
	if err := Validate(b.status, code); err != nil {
		return b, err
	}
	b.httpCode = code
	return b, nil
}

// Build projects the builder into a Response. It never fails.
func (b Builder) Build() Response {
	return Response{
		Status:   b.status,
		Message:  b.message,
		Data:     b.data,
		HTTPCode: b.httpCode,
	}
}

func (b Builder) Status() bool    { return b.status }
func (b Builder) HTTPCode() int   { return b.httpCode }
func (b Builder) Message() string { return b.message }
func (b Builder) Data() any       { return b.data }

// Must returns b, panicking if err is non-nil. It is meant for literal
// codes:
//
//	slarb.Must(slarb.Success().WithHTTPCode(http.StatusCreated))
func Must(b Builder, err error) Builder {
	if err != nil {
		panic(err)
	}
	return b
}
