package status

// HTTPError is an error which knows the response code it should be rendered
// with. Any error may be turned into a response; errors of this type choose
// their own code instead of the default 500.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest            = NewError(BadRequest, "bad request")
	ErrUnauthorized          = NewError(Unauthorized, "unauthorized")
	ErrForbidden             = NewError(Forbidden, "forbidden")
	ErrNotFound              = NewError(NotFound, "not found")
	ErrMethodNotAllowed      = NewError(MethodNotAllowed, "method not allowed")
	ErrRequestTimeout        = NewError(RequestTimeout, "request timeout")
	ErrRequestEntityTooLarge = NewError(RequestEntityTooLarge, "request entity too large")
	ErrUnsupportedMediaType  = NewError(UnsupportedMediaType, "unsupported media type")
	ErrUpgradeRequired       = NewError(UpgradeRequired, "upgrade required")
	ErrTooManyRequests       = NewError(TooManyRequests, "too many requests")
	ErrInternalServerError   = NewError(InternalServerError, "internal server error")
	ErrNotImplemented        = NewError(NotImplemented, "not implemented")
	ErrServiceUnavailable    = NewError(ServiceUnavailable, "service unavailable")
)
