package http

import (
	"errors"

	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
)

// FromError converts a fault into a well-formed response, recording the
// originating error in the envelope. This is the single sanctioned path by
// which an upstream failure becomes an outgoing response: errors carrying a
// status.HTTPError choose their own code, anything else becomes a 500. The
// serving pipeline thus always receives a response, never a leaked fault.
func FromError(err error) Response[Body] {
	code := status.InternalServerError

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	resp := WithBody(code, StringBody(err.Error()))
	resp.head.Headers.Set("Content-Type", mime.PlainUTF8)
	resp.err = err

	return resp
}

// FromString converts plain text into a 200 response.
func FromString(body string) Response[Body] {
	resp := WithBody(status.OK, StringBody(body))
	resp.head.Headers.Set("Content-Type", mime.PlainUTF8)

	return resp
}

// FromBytes converts a raw byte buffer into a 200 response, zero-copy.
func FromBytes(body []byte) Response[Body] {
	resp := WithBody(status.OK, BytesBody(body))
	resp.head.Headers.Set("Content-Type", mime.OctetStream)

	return resp
}
