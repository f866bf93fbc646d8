package http

import (
	"github.com/lumen-web/lumen/http/cookie"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
)

// NoBody is the payload type of responses whose body was dropped.
type NoBody = struct{}

// Response is an immutable envelope of head, payload and, for responses
// synthesized from a fault, the originating error. Instances come out of a
// Builder's terminal call or one of the From conversions; afterwards only the
// body-transform operators below may reshape them.
type Response[B any] struct {
	head *Head
	body ResponseBody[B]
	err  error
}

// New constructs a response with the given status code and an empty body,
// skipping the builder.
func New(code status.Code) Response[Body] {
	return WithBody(code, EmptyBody())
}

// WithBody constructs a response carrying the payload directly.
func WithBody[B any](code status.Code, body B) Response[B] {
	return Response[B]{
		head: NewHead(code),
		body: NewResponseBody(body),
	}
}

// Head returns the message part of the response. The head is mutable on
// purpose: operators like MapBody hand it out so Content-Length and friends
// can be kept consistent with a replaced payload.
func (r Response[B]) Head() *Head {
	return r.head
}

func (r Response[B]) Code() status.Code {
	return r.head.Code
}

func (r Response[B]) Headers() *kv.Storage {
	return r.head.Headers
}

// Err returns the error this response was synthesized from, if any.
func (r Response[B]) Err() error {
	return r.err
}

func (r Response[B]) KeepAlive() bool {
	return r.head.KeepAlive()
}

func (r Response[B]) Upgrade() bool {
	return r.head.Upgrade()
}

// Body returns the current payload without extracting it.
func (r Response[B]) Body() ResponseBody[B] {
	return r.body
}

// TakeBody extracts the payload, leaving an empty one in its place. Calling
// it on an already emptied response simply yields the empty body again,
// never a fault.
func (r *Response[B]) TakeBody() ResponseBody[B] {
	taken := r.body
	r.body = OtherResponseBody[B](EmptyBody())

	return taken
}

// ReplaceBody installs a new payload and returns the updated response along
// with the displaced one. Head and error carry over.
func ReplaceBody[B, B2 any](r Response[B], body B2) (Response[B2], ResponseBody[B]) {
	return Response[B2]{
		head: r.head,
		body: NewResponseBody(body),
		err:  r.err,
	}, r.body
}

// MapBody substitutes the payload through f, which also receives the head for
// mutation, so fields derived from the payload can be kept in sync. The
// originating error carries over untouched.
func MapBody[B, B2 any](r Response[B], f func(*Head, ResponseBody[B]) ResponseBody[B2]) Response[B2] {
	return Response[B2]{
		head: r.head,
		body: f(r.head, r.body),
		err:  r.err,
	}
}

// DropBody discards the payload, leaving head and error intact.
func DropBody[B any](r Response[B]) Response[NoBody] {
	return Response[NoBody]{
		head: r.head,
		body: NewResponseBody(NoBody{}),
		err:  r.err,
	}
}

// IntoBody re-types a plain response into one of payload type B, moving the
// actual Body into the foreign arm. Head and error carry over.
func IntoBody[B any](r Response[Body]) Response[B] {
	b, ok := r.body.Payload()
	if !ok {
		b, _ = r.body.Other()
	}

	return Response[B]{
		head: r.head,
		body: OtherResponseBody[B](b),
		err:  r.err,
	}
}

// Cookies returns the cookies set by this response, parsed back from its
// Set-Cookie headers. Malformed entries are skipped.
func (r Response[B]) Cookies() []cookie.Cookie {
	var cookies []cookie.Cookie

	for _, value := range r.head.Headers.Values("Set-Cookie") {
		c, err := cookie.ParseSetCookie(value)
		if err != nil {
			continue
		}

		cookies = append(cookies, c)
	}

	return cookies
}

// AddCookie appends a Set-Cookie header to an already built response,
// bypassing delta computation.
func (r Response[B]) AddCookie(c cookie.Cookie) error {
	line, err := cookie.AppendSet(nil, c)
	if err != nil {
		return err
	}

	r.head.Headers.Add("Set-Cookie", string(line))

	return nil
}

// DelCookie drops all Set-Cookie entries of the name from an already built
// response and returns how many were dropped. Unlike Builder.DelCookie it
// doesn't expire anything on the client, it unsays what this response was
// about to set.
func (r Response[B]) DelCookie(name string) int {
	values := r.head.Headers.Values("Set-Cookie")
	if len(values) == 0 {
		return 0
	}

	kept := make([]string, 0, len(values))

	for _, value := range values {
		if c, err := cookie.ParseSetCookie(value); err == nil && c.Name == name {
			continue
		}

		kept = append(kept, value)
	}

	dropped := len(values) - len(kept)
	if dropped > 0 {
		r.head.Headers.Delete("Set-Cookie")
		for _, value := range kept {
			r.head.Headers.Add("Set-Cookie", value)
		}
	}

	return dropped
}

// IntoBuilder converts the response back into a builder, dropping the body.
// Set-Cookie headers already on the response are reloaded into the builder's
// jar as originals, so finalizing without further cookie calls won't emit
// them twice.
func (r Response[B]) IntoBuilder() *Builder {
	return builderFromHead(r.head)
}

// BuilderFromHead derives a builder from an existing head without consuming
// it: the head is deep-copied first. Cookie reload works as in IntoBuilder.
func BuilderFromHead(head *Head) *Builder {
	return builderFromHead(head.Clone())
}

func builderFromHead(head *Head) *Builder {
	b := &Builder{head: head}

	for _, value := range head.Headers.Values("Set-Cookie") {
		c, err := cookie.ParseSetCookie(value)
		if err != nil {
			// a malformed entry cannot be targeted for removal anyway
			continue
		}

		b.jar().AddOriginal(c)
	}

	return b
}
