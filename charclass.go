package etag

// isEtagc marks the bytes allowed inside an opaque tag
// (etagc in RFC 7232 Section 2.3): %x21 / %x23-7E / obs-text.
// CTL, SP, DQUOTE and 0x7F are excluded.
var isEtagc = func() (t [256]bool) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		t[b] = b == 0x21 || (b >= 0x23 && b <= 0x7E) || b >= 0x80
	}
	return t
}()

// validOpaque reports whether s is a legal unquoted opaque tag, that is,
// consists entirely of etagc bytes. The empty string is legal.
func validOpaque(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isEtagc[s[i]] {
			return false
		}
	}
	return true
}
