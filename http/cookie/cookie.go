package cookie

import "time"

// Cookie is a single Set-Cookie intent. Name, Path and Domain form the
// cookie's identity: a user-agent stores one entry per identity, and that's
// also all Jar.Remove and AppendExpired need to target an entry for expiry.
// Everything else only matters for additions.
type Cookie struct {
	Name    string
	Value   string
	Path    string
	Domain  string
	Expires time.Time
	// MaxAge is the lifetime in seconds. Zero is treated as "unset" and
	// rendered as no attribute at all; pass a negative value (conventionally
	// -1) to emit a literal Max-Age=0. Removals don't consult this field,
	// the expiry form carries its own Max-Age=0
	MaxAge   int
	SameSite SameSite
	Secure   bool
	HttpOnly bool
}

func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

type Builder struct {
	cookie Cookie
}

// Build is a chainable constructor for cookies, mirroring how responses
// themselves are built.
func Build(name, value string) Builder {
	return Builder{New(name, value)}
}

// Path sets the identity path of the cookie. Set it to the same value when
// adding and when removing, otherwise the expiry entry targets a different
// stored entry.
func (b Builder) Path(path string) Builder {
	b.cookie.Path = path
	return b
}

// Domain sets the identity domain of the cookie. The same matching caveat as
// for Path applies.
func (b Builder) Domain(domain string) Builder {
	b.cookie.Domain = domain
	return b
}

func (b Builder) Expires(expires time.Time) Builder {
	b.cookie.Expires = expires
	return b
}

// MaxAge sets the lifetime in seconds. Zero means "unset"; use a negative
// value for a literal Max-Age=0.
func (b Builder) MaxAge(maxAge int) Builder {
	b.cookie.MaxAge = maxAge
	return b
}

func (b Builder) SameSite(sameSite SameSite) Builder {
	b.cookie.SameSite = sameSite
	return b
}

func (b Builder) Secure(secure bool) Builder {
	b.cookie.Secure = secure
	return b
}

func (b Builder) HttpOnly(httpOnly bool) Builder {
	b.cookie.HttpOnly = httpOnly
	return b
}

// Cookie returns the built cookie instance.
func (b Builder) Cookie() Cookie {
	return b.cookie
}

type SameSite = string

const (
	SameSiteLax    SameSite = "Lax"
	SameSiteStrict SameSite = "Strict"
	SameSiteNone   SameSite = "None"
)
