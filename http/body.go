package http

import (
	"github.com/indigo-web/utils/uf"
)

type BodyKind uint8

const (
	// BodyEmpty is a body of zero length, which is still rendered with
	// Content-Length: 0
	BodyEmpty BodyKind = iota
	// BodySized is a fixed payload of upfront-known length
	BodySized
	// BodyStream is a lazily produced payload of unknown length, pushing the
	// writing layer towards chunked transfer encoding
	BodyStream
)

// Body is the closed set of payload representations a response can carry.
// Exactly one representation is active at a time. Body performs no I/O by
// itself: a stream is only stored and forwarded to whoever writes the
// response out.
type Body struct {
	kind   BodyKind
	buff   []byte
	stream Stream
}

func EmptyBody() Body {
	return Body{}
}

// BytesBody wraps the passed slice WITHOUT COPYING. Changing the slice later
// will affect the response by itself.
func BytesBody(b []byte) Body {
	if len(b) == 0 {
		return EmptyBody()
	}

	return Body{kind: BodySized, buff: b}
}

// StringBody wraps the string zero-copy. The resulting payload must be
// treated as read-only.
func StringBody(s string) Body {
	return BytesBody(uf.S2B(s))
}

// StreamBody wraps a pull-based chunk producer. The stream is consumed at
// most once and isn't restartable.
func StreamBody(s Stream) Body {
	return Body{kind: BodyStream, stream: s}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

// Bytes returns the fixed payload. For empty and streamed bodies it returns
// nil.
func (b Body) Bytes() []byte {
	return b.buff
}

// Stream returns the chunk producer of a streamed body, nil otherwise.
func (b Body) Stream() Stream {
	return b.stream
}

// SizeHint tells the writing layer how large the payload is. When the size
// isn't known upfront, Chunked is set and Size is meaningless.
type SizeHint struct {
	Chunked bool
	Size    int
}

func (b Body) Size() SizeHint {
	switch b.kind {
	case BodyStream:
		return SizeHint{Chunked: true}
	default:
		return SizeHint{Size: len(b.buff)}
	}
}
