package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
)

var (
	// ErrEmptyBody is returned by Bind for a JSON request without a body.
	ErrEmptyBody = errors.New("empty request body")

	// ErrNotJSON is returned by Bind when the body is not JSON.
	ErrNotJSON = errors.New("request body is not JSON")
)

// Request wraps *http.Request with input helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// Bind decodes a JSON body into v with sonic. Form bodies are read field by
// field through Input.
func (req *Request) Bind(v any) error {
	if !req.IsJSON() {
		return ErrNotJSON
	}
	defer req.raw.Body.Close()

	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	return sonic.Unmarshal(body, v)
}

// Input returns a form or query value, or fallback when it is empty.
func (req *Request) Input(key string, fallback ...string) string {
	if v := req.raw.FormValue(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// InputInt is Input parsed as an integer. A missing value is 0.
func (req *Request) InputInt(key string) (int, error) {
	v := req.Input(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// Query returns a query-string value, or fallback when it is empty.
func (req *Request) Query(key string, fallback ...string) string {
	if v := req.raw.URL.Query().Get(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// RouteParam returns a chi URL parameter.
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// ContentType returns the media type of the body without parameters.
func (req *Request) ContentType() string {
	ct, _, _ := strings.Cut(req.raw.Header.Get("Content-Type"), ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// IsJSON reports whether the body is JSON.
func (req *Request) IsJSON() bool {
	ct := req.ContentType()
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}
