package http

import (
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
)

// enough for a typical response to never reallocate. Nothing scientific about
// the number
const preallocRespHeaders = 7

type ConnectionType uint8

const (
	// ConnUnset defers the keep-alive decision to the protocol version default
	ConnUnset ConnectionType = iota
	ConnKeepAlive
	ConnClose
	ConnUpgrade
)

// Head is everything about the response except the payload: the status line,
// the headers and the connection metadata. It is exclusively owned by either
// a Builder or a Response and mutated only through accessors.
type Head struct {
	Proto   proto.Proto
	Code    status.Code
	Headers *kv.Storage
	// NoChunking disables chunked transfer encoding for streamed bodies,
	// leaving closing the connection as the only way to delimit the payload
	NoChunking bool

	reason   status.Status
	connType ConnectionType
}

func NewHead(code status.Code) *Head {
	return &Head{
		Proto:   proto.HTTP11,
		Code:    code,
		Headers: kv.NewPrealloc(preallocRespHeaders),
	}
}

// SetReason overrides the reason phrase of the status line. Clients tend to
// ignore it completely, so this matters only when the status text itself is
// displayed somewhere, or the code isn't in the registry.
func (h *Head) SetReason(reason status.Status) {
	h.reason = reason
}

// Status returns the reason phrase: either the custom one or the registry
// text for the code.
func (h *Head) Status() status.Status {
	if len(h.reason) > 0 {
		return h.reason
	}

	return status.Text(h.Code)
}

func (h *Head) SetConnectionType(connType ConnectionType) {
	h.connType = connType
}

func (h *Head) ConnectionType() ConnectionType {
	return h.connType
}

// KeepAlive is derived from the connection type and never stored: an upgraded
// connection stays open by definition, an unset type falls back to the
// protocol version default.
func (h *Head) KeepAlive() bool {
	switch h.connType {
	case ConnKeepAlive, ConnUpgrade:
		return true
	case ConnClose:
		return false
	default:
		return h.Proto.KeepAliveByDefault()
	}
}

// Upgrade reports whether the response switches the connection to another
// protocol.
func (h *Head) Upgrade() bool {
	return h.connType == ConnUpgrade
}

// Clone returns a deep copy with its own header storage.
func (h *Head) Clone() *Head {
	copied := *h
	copied.Headers = h.Headers.Clone()

	return &copied
}
