package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/km-arc/slarb/framework/slarb"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter and writes slarb envelopes.
type Response struct {
	w   http.ResponseWriter
	log *zap.Logger
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w, log: zap.NewNop()}
}

// WithLogger sets the logger used to report encoding and builder errors.
func (res *Response) WithLogger(log *zap.Logger) *Response {
	if log != nil {
		res.log = log
	}
	return res
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON encodes data with sonic and sends it with status.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	body, err := sonic.Marshal(data)
	if err != nil {
		res.log.Error("encode response", zap.Int("code", status), zap.Error(err))
		http.Error(res.w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_, _ = res.w.Write(body)
}

// Slarb sends a built response with its own HTTP code. A 1xx code cannot
// carry the body, so it is logged and answered with 500.
//
//	res.Slarb(slarb.Success().WithData(user).Build())
func (res *Response) Slarb(r slarb.Response) {
	if !slarb.IsFinal(r.HTTPCode) {
		res.log.Error("interim response code", zap.Int("code", r.HTTPCode), zap.Bool("status", r.Status))
		r = serverError()
	}
	res.JSON(r.HTTPCode, r)
}

// Send is Slarb for a builder.
func (res *Response) Send(b slarb.Builder) {
	res.Slarb(b.Build())
}

// Success sends 200 {"status": true, "message": "Request Successful", "data": v}
func (res *Response) Success(v any) {
	res.Send(slarb.Success().WithData(v))
}

// Created sends 201 with v as data.
func (res *Response) Created(v any) {
	res.Send(slarb.Must(slarb.Success().WithHTTPCode(http.StatusCreated)).WithData(v))
}

// NoContent sends 204 with no body.
func (res *Response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends an error envelope with the given code. A code that is not a
// valid error code is a bug in the caller; it is logged and answered with 500.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.ErrorWithData(status, message, nil)
}

// ErrorWithData is Error with a payload, e.g. field errors.
func (res *Response) ErrorWithData(status int, message string, data any) {
	b, err := slarb.Error().WithHTTPCode(status)
	if err != nil {
		res.log.Error("invalid error response code", zap.Int("code", status), zap.Error(err))
		res.Slarb(serverError())
		return
	}
	res.Send(b.WithMessage(message).WithData(data))
}

// Unauthorized sends 401.
func (res *Response) Unauthorized(message ...string) {
	res.Error(http.StatusUnauthorized, first(message, "Unauthenticated."))
}

// Forbidden sends 403.
func (res *Response) Forbidden(message ...string) {
	res.Error(http.StatusForbidden, first(message, "This action is unauthorized."))
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// MethodNotAllowed sends 405.
func (res *Response) MethodNotAllowed(message ...string) {
	res.Error(http.StatusMethodNotAllowed, first(message, "Method not allowed."))
}

// Unprocessable sends 422 with data describing what was rejected.
func (res *Response) Unprocessable(message string, data any) {
	res.ErrorWithData(http.StatusUnprocessableEntity, message, data)
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func serverError() slarb.Response {
	return slarb.Must(slarb.Error().WithHTTPCode(http.StatusInternalServerError)).
		WithMessage("Server Error.").
		Build()
}

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
