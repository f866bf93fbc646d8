package http

import (
	"errors"
	"strconv"

	json "github.com/json-iterator/go"

	"github.com/lumen-web/lumen/http/cookie"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
)

var (
	ErrBadHeaderKey   = errors.New("header name contains illegal characters")
	ErrBadHeaderValue = errors.New("header value contains illegal characters")
)

// Builder assembles a response incrementally: head mutations, cookie intents
// and the payload, finished by exactly one terminal call.
//
// Encoding faults don't interrupt the chain. The first one is latched,
// everything after it becomes a no-op, and the terminal call swaps the whole
// intended response for an error one. That way chained calls read fluently
// without intermediate checks, yet a bad header can never slip through
// silently.
//
// The builder is single-use: a second terminal call is a bug in the caller
// and panics instead of producing a degenerate response.
type Builder struct {
	head    *Head
	err     error
	cookies *cookie.Jar
}

// Build returns a response builder with the given status code.
func Build(code status.Code) *Builder {
	return &Builder{head: NewHead(code)}
}

// parts gives mutators access to the head. Once an error is latched or the
// builder is consumed, it returns nil and the mutation quietly doesn't
// happen.
func (b *Builder) parts() *Head {
	if b.err != nil {
		return nil
	}

	return b.head
}

func (b *Builder) jar() *cookie.Jar {
	if b.cookies == nil {
		b.cookies = cookie.NewJar()
	}

	return b.cookies
}

// Status replaces the status code.
func (b *Builder) Status(code status.Code) *Builder {
	if h := b.parts(); h != nil {
		h.Code = code
	}

	return b
}

// Reason sets a custom reason phrase for the status line.
func (b *Builder) Reason(reason status.Status) *Builder {
	if h := b.parts(); h != nil {
		h.SetReason(reason)
	}

	return b
}

// Version pins the protocol version of the response.
func (b *Builder) Version(v proto.Proto) *Builder {
	if h := b.parts(); h != nil {
		h.Proto = v
	}

	return b
}

// Header appends values under the key. The key and every value go through
// encoding validation; the first violation is latched and turns the rest of
// the chain into no-ops.
func (b *Builder) Header(key string, values ...string) *Builder {
	h := b.parts()
	if h == nil {
		return b
	}

	if err := validateHeaderKey(key); err != nil {
		b.err = err
		return b
	}

	for _, value := range values {
		if err := validateHeaderValue(value); err != nil {
			b.err = err
			return b
		}

		h.Headers.Add(key, value)
	}

	return b
}

// SetHeader works like Header, except all previous values of the key are
// replaced.
func (b *Builder) SetHeader(key, value string) *Builder {
	h := b.parts()
	if h == nil {
		return b
	}

	if err := validateHeaderKey(key); err != nil {
		b.err = err
		return b
	}

	if err := validateHeaderValue(value); err != nil {
		b.err = err
		return b
	}

	h.Headers.Set(key, value)

	return b
}

// ContentType sets the Content-Type header, replacing an already present one.
func (b *Builder) ContentType(value mime.MIME) *Builder {
	return b.SetHeader("Content-Type", value)
}

// ContentLength sets the Content-Length header to the decimal rendering of
// the byte count.
func (b *Builder) ContentLength(length int) *Builder {
	return b.Header("Content-Length", strconv.Itoa(length))
}

// KeepAlive marks the connection persistent.
func (b *Builder) KeepAlive() *Builder {
	if h := b.parts(); h != nil {
		h.SetConnectionType(ConnKeepAlive)
	}

	return b
}

// ForceClose closes the connection after the response, even if it would be
// kept alive otherwise.
func (b *Builder) ForceClose() *Builder {
	if h := b.parts(); h != nil {
		h.SetConnectionType(ConnClose)
	}

	return b
}

// Upgrade switches the connection to the named protocol, setting both the
// connection type and the Upgrade header.
func (b *Builder) Upgrade(protocol string) *Builder {
	if h := b.parts(); h != nil {
		h.SetConnectionType(ConnUpgrade)
	}

	return b.SetHeader("Upgrade", protocol)
}

// NoChunking disables chunked transfer encoding for streamed payloads.
func (b *Builder) NoChunking() *Builder {
	if h := b.parts(); h != nil {
		h.NoChunking = true
	}

	return b
}

// Cookie stages cookies to be set on the client.
func (b *Builder) Cookie(cookies ...cookie.Cookie) *Builder {
	if b.parts() == nil {
		return b
	}

	for _, c := range cookies {
		b.jar().Add(c)
	}

	return b
}

// DelCookie stages a removal of the client's cookie. Only the identity of the
// passed cookie (name, path, domain) matters; the emitted entry is an
// immediate-expiry directive.
func (b *Builder) DelCookie(c cookie.Cookie) *Builder {
	if b.parts() == nil {
		return b
	}

	b.jar().AddOriginal(c)
	b.jar().Remove(c)

	return b
}

// If calls f with the builder when cond is true. Keeps conditional parts of a
// chain chainable.
func (b *Builder) If(cond bool, f func(*Builder)) *Builder {
	if cond {
		f(b)
	}

	return b
}

// Body attaches the payload and finishes the builder. A latched encoding
// fault, or a cookie which fails to format, discards everything built so far
// and yields the corresponding error response instead.
func (b *Builder) Body(body Body) Response[Body] {
	head := b.consume()

	if b.err != nil {
		return FromError(b.err)
	}

	if b.cookies != nil {
		delta, err := b.cookies.Delta()
		if err != nil {
			return FromError(err)
		}

		for _, value := range delta {
			head.Headers.Add("Set-Cookie", value)
		}
	}

	return Response[Body]{
		head: head,
		body: NewResponseBody(body),
	}
}

// Bytes finishes the builder with a fixed payload, zero-copy.
func (b *Builder) Bytes(body []byte) Response[Body] {
	return b.Body(BytesBody(body))
}

// String finishes the builder with a fixed payload, zero-copy.
func (b *Builder) String(body string) Response[Body] {
	return b.Body(StringBody(body))
}

// Stream finishes the builder with a lazily produced payload.
func (b *Builder) Stream(s Stream) Response[Body] {
	return b.Body(StreamBody(s))
}

// Finish finishes the builder with an empty payload.
func (b *Builder) Finish() Response[Body] {
	return b.Body(EmptyBody())
}

// JSON serializes the model and finishes the builder. A serialization fault
// short-circuits into an error response, skipping header and cookie merging
// entirely. On success Content-Type is set to application/json only if the
// caller hasn't preset one: the presence check must happen before the set,
// so an explicit "text/json" and alike survive.
func (b *Builder) JSON(model any) Response[Body] {
	buff, err := serializeJSON(model)
	if err != nil {
		b.consume()
		return FromError(err)
	}

	if h := b.parts(); h != nil && !h.Headers.Has("Content-Type") {
		h.Headers.Add("Content-Type", mime.JSON)
	}

	return b.Body(BytesBody(buff))
}

func (b *Builder) consume() *Head {
	head := b.head
	if head == nil {
		panic("lumen: response builder used after its terminal call")
	}

	b.head = nil
	return head
}

func serializeJSON(model any) ([]byte, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(model)
	if stream.Error != nil {
		return nil, stream.Error
	}

	buff := make([]byte, len(stream.Buffer()))
	copy(buff, stream.Buffer())

	return buff, nil
}

func validateHeaderKey(key string) error {
	if len(key) == 0 {
		return ErrBadHeaderKey
	}

	for i := 0; i < len(key); i++ {
		if !isTokenChar(key[i]) {
			return ErrBadHeaderKey
		}
	}

	return nil
}

// field-content per RFC 9110: visible ASCII, space, tab and obs-text.
func validateHeaderValue(value string) error {
	for i := 0; i < len(value); i++ {
		if ch := value[i]; (ch < 0x20 && ch != '\t') || ch == 0x7f {
			return ErrBadHeaderValue
		}
	}

	return nil
}

func isTokenChar(ch byte) bool {
	if ch <= 0x20 || ch >= 0x7f {
		return false
	}

	switch ch {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		return false
	default:
		return true
	}
}
