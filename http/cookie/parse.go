package cookie

import (
	"strconv"
	"strings"
	"time"

	"github.com/indigo-web/utils/strcomp"
)

// ParseSetCookie parses a Set-Cookie header value back into a Cookie.
// Unrecognized attributes are skipped. Used to reload cookies of an already
// built response into a jar as originals.
func ParseSetCookie(value string) (Cookie, error) {
	pair, rest, _ := strings.Cut(value, ";")

	name, val, found := strings.Cut(pair, "=")
	if !found {
		return Cookie{}, ErrBadValue
	}

	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return Cookie{}, err
	}

	c := New(name, strings.TrimSpace(val))

	for len(rest) > 0 {
		var attr string
		attr, rest, _ = strings.Cut(rest, ";")
		key, attrValue, _ := strings.Cut(strings.TrimSpace(attr), "=")

		switch {
		case strcomp.EqualFold(key, "path"):
			c.Path = attrValue
		case strcomp.EqualFold(key, "domain"):
			c.Domain = attrValue
		case strcomp.EqualFold(key, "httponly"):
			c.HttpOnly = true
		case strcomp.EqualFold(key, "secure"):
			c.Secure = true
		case strcomp.EqualFold(key, "samesite"):
			c.SameSite = attrValue
		case strcomp.EqualFold(key, "max-age"):
			age, err := strconv.Atoi(attrValue)
			if err != nil {
				return Cookie{}, ErrBadAttr
			}
			if age == 0 {
				age = -1
			}
			c.MaxAge = age
		case strcomp.EqualFold(key, "expires"):
			expires, err := time.Parse(expiresFormat, attrValue)
			if err != nil {
				return Cookie{}, ErrBadAttr
			}
			c.Expires = expires
		}
	}

	return c, nil
}
