package message

import "unsafe"

// b2s borrows the bytes of b as a string without copying. The returned
// string is only valid for as long as the backing array of b is not
// mutated; for frames produced by ParseClient or ParseServer, that backing array is the frame's
// own source buffer, which a parsed frame keeps alive for exactly this
// reason. This mirrors the zero-copy byte/string conversion idiom used
// by high-throughput Go wire-protocol code (e.g. valyala/fasthttp).
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
