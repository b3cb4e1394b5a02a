package etag

import (
	"encoding/base64"
	"encoding/binary"
	"io/fs"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Distinct hash seeds keep the content-derived and metadata-derived
// generators from producing the same tag for identical byte patterns.
const (
	dataSeed     = 3
	fileStatSeed = 4
)

// FromData derives a strong EntityTag from the content of a resource.
// The opaque tag is the unpadded base64 of a fast 64-bit hash of data,
// so equal contents always produce equal tags, but the hash is not
// cryptographic: distinct contents can collide. FromData never fails.
func FromData(data []byte) EntityTag {
	d := xxhash.NewWithSeed(dataSeed)
	d.Write(data)
	return NewUnchecked(false, encodeSum(d.Sum64()))
}

// FromFileStat derives a weak EntityTag from a file's size in bytes and
// modification time. A zero modified means the modification time is not
// available, in which case only the size is hashed.
//
// The tag is always weak: size and mtime are a coarse fingerprint, and
// two different contents can share both after a quick enough rewrite,
// so the result must not be used for byte-exact comparison.
// FromFileStat never fails.
func FromFileStat(size uint64, modified time.Time) EntityTag {
	d := xxhash.NewWithSeed(fileStatSeed)
	var sbuf [8]byte
	binary.LittleEndian.PutUint64(sbuf[:], size)
	d.Write(sbuf[:])
	if !modified.IsZero() {
		// The nanosecond offset from the Unix epoch, as a little-endian
		// 128-bit magnitude, preceded by a '-' marker when the file
		// predates the epoch.
		nanos := modified.UnixNano()
		if nanos < 0 {
			d.Write([]byte{'-'})
		}
		var tbuf [16]byte
		binary.LittleEndian.PutUint64(tbuf[:8], absNanos(nanos))
		d.Write(tbuf[:])
	}
	return NewUnchecked(true, encodeSum(d.Sum64()))
}

// FromFileInfo derives a weak EntityTag from fi's size and modification
// time, exactly as FromFileStat does.
func FromFileInfo(fi fs.FileInfo) EntityTag {
	return FromFileStat(uint64(fi.Size()), fi.ModTime())
}

func absNanos(nanos int64) uint64 {
	if nanos < 0 {
		return uint64(-nanos)
	}
	return uint64(nanos)
}

// encodeSum turns the 8 little-endian bytes of a hash into an opaque
// tag. Unpadded standard base64 of 8 bytes is always 11 etagc bytes,
// so the result needs no validation.
func encodeSum(sum uint64) string {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], sum)
	return base64.RawStdEncoding.EncodeToString(b[:])
}
