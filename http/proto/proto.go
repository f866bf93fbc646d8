package proto

type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11
	HTTP2

	HTTP1 = HTTP10 | HTTP11
)

func (p Proto) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2"
	default:
		return ""
	}
}

// KeepAliveByDefault tells whether connections of the protocol version are
// persistent unless stated otherwise. HTTP/1.0 requires an explicit
// Connection: keep-alive, everything above is persistent from the start.
func (p Proto) KeepAliveByDefault() bool {
	return p != HTTP10
}
