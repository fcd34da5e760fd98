package fetch

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Response wraps the transport's reply. The body stays untouched until
// DecodeJSON or ReadBody is called, so a not-ok reply can be inspected
// without consuming it.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	body       io.ReadCloser
}

func newResponse(r *http.Response) *Response {
	return &Response{
		StatusCode: r.StatusCode,
		Status:     r.Status,
		Header:     r.Header,
		body:       r.Body,
	}
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// StatusText returns the reason phrase without the leading status code.
func (r *Response) StatusText() string {
	text := strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode))
	return strings.TrimSpace(text)
}

// ReadBody consumes the body and returns its raw bytes.
func (r *Response) ReadBody() ([]byte, error) {
	if r.body == nil {
		return nil, nil
	}
	defer r.body.Close()

	b, err := io.ReadAll(r.body)
	if err != nil {
		return nil, errs.New("read body: %w", err)
	}
	return b, nil
}

// DecodeJSON consumes the body and decodes it as JSON.
func (r *Response) DecodeJSON() (any, error) {
	b, err := r.ReadBody()
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
