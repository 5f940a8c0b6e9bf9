package model

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// HTTP client for downloading model weights, with the root URL of the
// weights repository
type client struct {
	http.Client
	root *url.URL
}

// Body reader which returns an error if the context is cancelled early
type reader struct {
	io.Reader
	ctx context.Context
}

// Writer which reports download progress as bytes are written
type progressWriter struct {
	w     io.Writer
	fn    func(cur, total uint64)
	cur   uint64
	total uint64
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newClient(root string) *client {
	url, err := url.Parse(root)
	if err != nil {
		return nil
	}
	return &client{
		root: url,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get a file from the server, writing the response to the writer and
// returning the number of bytes copied
func (c *client) Get(ctx context.Context, w io.Writer, path string) (int64, error) {
	url := c.root.JoinPath(path)

	// Make a request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return 0, err
	}

	// Perform the request
	response, err := c.Do(req)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	// Unexpected status code
	if response.StatusCode != http.StatusOK {
		return 0, errors.ErrUnexpectedResponse.With(response.Status)
	}

	// Pass the content length through for progress reporting
	if pw, ok := w.(*progressWriter); ok {
		if length, err := strconv.ParseUint(response.Header.Get("Content-Length"), 10, 64); err == nil {
			pw.total = length
		}
	}

	// Write the response, cancelling if the context is cancelled or deadline
	// is exceeded. Return number of bytes copied
	return io.Copy(w, &reader{response.Body, ctx})
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - READER INTERFACE

func (r *reader) Read(p []byte) (n int, err error) {
	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	default:
		return r.Reader.Read(p)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - WRITER INTERFACE

func (w *progressWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.cur += uint64(n)
	if w.fn != nil && w.total > 0 {
		w.fn(w.cur, w.total)
	}
	return n, err
}
