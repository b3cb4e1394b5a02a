/*
Package etag parses and generates HTTP entity tags
(RFC 7232 Section 2.3).

An entity tag, carried in the ETag header, is an opaque validator for
one particular representation of a resource, such as "xyzzy" or, with
the weakness indicator, W/"xyzzy". Use Parse to decode a tag from its
wire form, New to build one from an opaque string, or FromData and
FromFileStat to derive one from the resource itself. The String method
gives back the canonical wire form.

This package handles one entity tag at a time. Splitting the
comma-separated lists of If-Match and If-None-Match, and moving tags
in and out of actual headers, is left to the HTTP stack hosting it.
*/
package etag
