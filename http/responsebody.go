package http

// ResponseBody carries the response payload in one of two arms: either a
// value of the response's native payload type B, or a Body displaced from
// another response by a type-level conversion. Exactly one arm is populated
// at a time, so the writing layer never has to guess.
type ResponseBody[B any] struct {
	payload B
	other   Body
	isOther bool
}

// NewResponseBody wraps a native payload.
func NewResponseBody[B any](payload B) ResponseBody[B] {
	return ResponseBody[B]{payload: payload}
}

// OtherResponseBody wraps a foreign Body, keeping its representation without
// re-deriving it into B.
func OtherResponseBody[B any](body Body) ResponseBody[B] {
	return ResponseBody[B]{other: body, isOther: true}
}

// Payload returns the native payload arm, if it's the populated one.
func (r ResponseBody[B]) Payload() (B, bool) {
	return r.payload, !r.isOther
}

// Other returns the foreign Body arm, if it's the populated one.
func (r ResponseBody[B]) Other() (Body, bool) {
	if !r.isOther {
		return Body{}, false
	}

	return r.other, true
}
