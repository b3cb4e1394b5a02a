package etag

import "errors"

// Errors returned by New and Parse. These are the only errors this
// package produces; match them with errors.Is. FromData, FromFileStat
// and FromFileInfo never fail.
var (
	// ErrMissingStartingDoubleQuote means the opaque tag does not begin
	// with a double quote (after any W/ prefix has been stripped).
	ErrMissingStartingDoubleQuote = errors.New("etag: opaque tag is missing the starting double quote")

	// ErrMissingClosingDoubleQuote means the opaque tag begins with
	// a double quote but does not end with one.
	ErrMissingClosingDoubleQuote = errors.New("etag: opaque tag is missing the closing double quote")

	// ErrInvalidTag means the tag contains a byte outside the etagc set
	// of RFC 7232 Section 2.3, such as a control character or an
	// embedded double quote.
	ErrInvalidTag = errors.New("etag: invalid byte in opaque tag")
)
