package cookie

import (
	"errors"
	"strconv"
)

var (
	ErrBadName  = errors.New("cookie name contains illegal characters")
	ErrBadValue = errors.New("cookie value contains illegal characters")
	ErrBadAttr  = errors.New("cookie attribute contains illegal characters")
)

const expiresFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// AppendSet renders the cookie as a Set-Cookie header value and appends it
// to dst. Attribute order is fixed: flags first, then SameSite, Path, Domain,
// Max-Age and Expires, so output is stable and testable.
func AppendSet(dst []byte, c Cookie) ([]byte, error) {
	if err := validate(c); err != nil {
		return dst, err
	}

	dst = append(dst, c.Name...)
	dst = append(dst, '=')
	dst = append(dst, c.Value...)

	if c.HttpOnly {
		dst = append(dst, "; HttpOnly"...)
	}

	if c.Secure {
		dst = append(dst, "; Secure"...)
	}

	if len(c.SameSite) > 0 {
		dst = append(dst, "; SameSite="...)
		dst = append(dst, c.SameSite...)
	}

	dst = appendIdentity(dst, c)

	switch {
	case c.MaxAge > 0:
		dst = append(dst, "; Max-Age="...)
		dst = strconv.AppendInt(dst, int64(c.MaxAge), 10)
	case c.MaxAge < 0:
		dst = append(dst, "; Max-Age=0"...)
	}

	if !c.Expires.IsZero() {
		dst = append(dst, "; Expires="...)
		dst = append(dst, c.Expires.UTC().Format(expiresFormat)...)
	}

	return dst, nil
}

// AppendExpired renders the immediate-expiry form used to remove the cookie
// from a client: the value is dropped and only the identity attributes (path,
// domain) are kept, as that's all a user-agent needs to match the stored entry.
func AppendExpired(dst []byte, c Cookie) ([]byte, error) {
	if err := validateName(c.Name); err != nil {
		return dst, err
	}
	if err := validateAttrs(c); err != nil {
		return dst, err
	}

	dst = append(dst, c.Name...)
	dst = append(dst, "=; Max-Age=0"...)

	return appendIdentity(dst, c), nil
}

func appendIdentity(dst []byte, c Cookie) []byte {
	if len(c.Path) > 0 {
		dst = append(dst, "; Path="...)
		dst = append(dst, c.Path...)
	}

	if len(c.Domain) > 0 {
		dst = append(dst, "; Domain="...)
		dst = append(dst, c.Domain...)
	}

	return dst
}

func validate(c Cookie) error {
	if err := validateName(c.Name); err != nil {
		return err
	}

	for i := 0; i < len(c.Value); i++ {
		if !isCookieOctet(c.Value[i]) {
			return ErrBadValue
		}
	}

	return validateAttrs(c)
}

func validateName(name string) error {
	if len(name) == 0 {
		return ErrBadName
	}

	for i := 0; i < len(name); i++ {
		if !isTokenChar(name[i]) {
			return ErrBadName
		}
	}

	return nil
}

func validateAttrs(c Cookie) error {
	for i := 0; i < len(c.Path); i++ {
		if ch := c.Path[i]; ch < 0x20 || ch == 0x7f || ch == ';' {
			return ErrBadAttr
		}
	}

	for i := 0; i < len(c.Domain); i++ {
		if ch := c.Domain[i]; ch < 0x20 || ch == 0x7f || ch == ';' || ch == ' ' {
			return ErrBadAttr
		}
	}

	return nil
}

// RFC 6265 cookie-octet: printable US-ASCII except whitespace, DQUOTE, comma,
// semicolon and backslash.
func isCookieOctet(ch byte) bool {
	switch {
	case ch < 0x21 || ch > 0x7e:
		return false
	case ch == '"' || ch == ',' || ch == ';' || ch == '\\':
		return false
	default:
		return true
	}
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
