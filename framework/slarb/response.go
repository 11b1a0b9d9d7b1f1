package slarb

// Response is the result of Builder.Build. It serializes to exactly the
// status, message and data keys; HTTPCode travels beside the body.
type Response struct {
	Status   bool   `json:"status"`
	Message  string `json:"message"`
	Data     any    `json:"data"`
	HTTPCode int    `json:"-"`
}

// Body returns the response body keyed by KeyStatus, KeyMessage and KeyData.
func (r Response) Body() map[string]any {
	return map[string]any{
		KeyStatus:  r.Status,
		KeyMessage: r.Message,
		KeyData:    r.Data,
	}
}

// StatusText returns the reason phrase of r.HTTPCode.
func (r Response) StatusText() string {
	return StatusText(r.HTTPCode)
}
