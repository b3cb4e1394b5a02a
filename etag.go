package etag

import "strings"

// HeaderName is the name of the response header that carries an entity
// tag ("ETag").
const HeaderName = "ETag"

// An EntityTag is an opaque entity tag (RFC 7232 Section 2.3),
// such as "xyzzy" or W/"xyzzy" in its wire form.
//
// An EntityTag is immutable: it can only be obtained from New, Parse,
// NewUnchecked or one of the From functions, and is never modified
// afterwards, so values may be freely copied and shared between
// goroutines.
//
// The zero EntityTag is the valid strong tag with an empty opaque
// string, formatting as "".
type EntityTag struct {
	weak   bool
	opaque string // not including double quotes
}

// New constructs an EntityTag with the given weakness from an opaque
// tag, which may optionally be enclosed in a single pair of double
// quotes: New(false, `foo`) and New(false, `"foo"`) are the same tag.
//
// If tag opens a quote without closing it, New returns
// ErrMissingClosingDoubleQuote; if the unquoted tag contains a byte
// not allowed by the etagc grammar, ErrInvalidTag. Unlike Parse,
// New does not give W/ any special meaning.
func New(weak bool, tag string) (EntityTag, error) {
	if len(tag) > 0 && tag[0] == '"' {
		if len(tag) < 2 || tag[len(tag)-1] != '"' {
			return EntityTag{}, ErrMissingClosingDoubleQuote
		}
		tag = tag[1 : len(tag)-1]
	}
	if !validOpaque(tag) {
		return EntityTag{}, ErrInvalidTag
	}
	return EntityTag{weak: weak, opaque: tag}, nil
}

// NewUnchecked constructs an EntityTag without validating tag.
// The caller must guarantee that tag contains only etagc bytes
// and no enclosing double quotes; New and Parse enforce this for
// untrusted input.
func NewUnchecked(weak bool, tag string) EntityTag {
	return EntityTag{weak: weak, opaque: tag}
}

// Parse constructs an EntityTag from its wire form: an opaque tag
// enclosed in double quotes, optionally preceded by the weakness
// indicator W/, as in the value of an ETag header.
//
// Unlike New, Parse is strict: the double quotes are required.
// A missing opening quote gives ErrMissingStartingDoubleQuote,
// a missing closing quote ErrMissingClosingDoubleQuote, and a byte
// not allowed by the etagc grammar ErrInvalidTag.
func Parse(s string) (EntityTag, error) {
	var weak bool
	if strings.HasPrefix(s, "W/") {
		weak = true
		s = s[2:]
	}
	if len(s) == 0 || s[0] != '"' {
		return EntityTag{}, ErrMissingStartingDoubleQuote
	}
	if len(s) < 2 || s[len(s)-1] != '"' {
		return EntityTag{}, ErrMissingClosingDoubleQuote
	}
	opaque := s[1 : len(s)-1]
	if !validOpaque(opaque) {
		return EntityTag{}, ErrInvalidTag
	}
	return EntityTag{weak: weak, opaque: opaque}, nil
}

// Weak reports whether t carries the W/ weakness indicator.
func (t EntityTag) Weak() bool {
	return t.weak
}

// Opaque returns the opaque tag, not including the double quotes.
func (t EntityTag) Opaque() string {
	return t.opaque
}

// StrongEqual reports whether t and other are equivalent under strong
// comparison (RFC 7232 Section 2.3.2): both must be non-weak and their
// opaque tags must match byte for byte. This is the comparison for
// interpreting If-Match.
func (t EntityTag) StrongEqual(other EntityTag) bool {
	return !t.weak && !other.weak && t.opaque == other.opaque
}

// WeakEqual reports whether t and other are equivalent under weak
// comparison (RFC 7232 Section 2.3.2): their opaque tags must match
// byte for byte, regardless of either being weak. This is the
// comparison for interpreting If-None-Match.
func (t EntityTag) WeakEqual(other EntityTag) bool {
	return t.opaque == other.opaque
}

// StrongNotEqual is the inverse of StrongEqual.
func (t EntityTag) StrongNotEqual(other EntityTag) bool {
	return !t.StrongEqual(other)
}

// WeakNotEqual is the inverse of WeakEqual.
func (t EntityTag) WeakNotEqual(other EntityTag) bool {
	return !t.WeakEqual(other)
}

// String returns the wire form of t, suitable for use as the value of
// an ETag header: W/ if t is weak, then the opaque tag in double
// quotes. For any valid tag, Parse(t.String()) gives back t.
func (t EntityTag) String() string {
	b := &strings.Builder{}
	b.Grow(len(t.opaque) + 4)
	if t.weak {
		b.WriteString("W/")
	}
	b.WriteByte('"')
	b.WriteString(t.opaque)
	b.WriteByte('"')
	return b.String()
}

// MarshalText implements encoding.TextMarshaler, returning the same
// wire form as String.
func (t EntityTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// strict grammar as Parse.
func (t *EntityTag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
