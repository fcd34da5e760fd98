package fetch

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Doer is the transport capability: given a request, do it. *http.Client
// satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client carries the injected transport and logger used by the pipeline
// entry points. The zero value is not usable; construct with NewClient.
type Client struct {
	http Doer
	log  *zap.Logger
}

type ClientOption func(*Client)

func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		c.http = d
	}
}

func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http: http.DefaultClient,
		log:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options configures a single request. Cancellation and deadlines flow in
// through the context, not through Options.
type Options struct {
	Method string // defaults to GET
	Header http.Header
	Body   io.Reader
}

func (c *Client) do(ctx context.Context, url string, opts *Options) (*Response, error) {
	method := http.MethodGet
	var body io.Reader
	var header http.Header

	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		header = opts.Header
		body = opts.Body
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	return newResponse(resp), nil
}
