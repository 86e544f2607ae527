package mclog

/*
Bounded message formatting. Every write renders the caller's format string
into a fixed-capacity scratch buffer, normalizes line endings (bare LF is
expanded to CRLF) and composes the final bytes from the optional status
prefix, the channel header and the normalized payload. The total never
exceeds MSG_BUFFER_SIZE; the payload is truncated silently to keep the
composition within the bound. No per-write heap allocation: both buffers
live on the caller's stack.
*/

import "fmt"

// boundWriter is a cursor over a fixed-capacity byte region. It tracks
// remaining capacity and refuses writes beyond the bound instead of growing.
type boundWriter struct {
	buf []byte // destination region; len(buf) is the hard bound
	n   int    // bytes written so far
}

// writeByte appends a single byte, reporting false once the bound is reached.
func (w *boundWriter) writeByte(b byte) bool {
	if w.n >= len(w.buf) {
		return false
	}
	w.buf[w.n] = b
	w.n++
	return true
}

// writeString appends as much of s as fits and returns how many bytes
// were actually written.
func (w *boundWriter) writeString(s string) int {
	c := copy(w.buf[w.n:], s)
	w.n += c
	return c
}

// bytes returns the written prefix of the underlying region.
func (w *boundWriter) bytes() []byte {
	return w.buf[:w.n]
}

/////////////////////////////////////////////////////////////////////////////////////////

// renderMessage renders the format string and arguments into the scratch
// slice. A rendered message that reaches MSG_BUFFER_SIZE is a contract
// violation: callers must keep formatted messages under the limit.
func renderMessage(scratch []byte, format string, args ...any) []byte {
	out := fmt.Appendf(scratch[:0], format, args...)
	if len(out) >= MSG_BUFFER_SIZE {
		panic(_ERROR_MESSAGE_MSG_TOO_LONG)
	}
	return out
}

// normalizeCRLF copies src into w, emitting a carriage return before every
// bare line feed. A line feed is bare when it is not the very first character
// and its predecessor is not a carriage return, so a leading "\n" gets no
// spurious "\r" and already present "\r\n" sequences are left untouched.
// Copying stops silently once the writer bound is reached.
func normalizeCRLF(w *boundWriter, src []byte) {
	for i, b := range src {
		if b == '\n' && i > 0 && src[i-1] != '\r' {
			if !w.writeByte('\r') {
				return
			}
		}
		if !w.writeByte(b) {
			return
		}
	}
}

// composeMessage builds the final bytes for a channel into dst: the status
// prefix (truncated to MAX_STATUS_LEN, followed by ": ") when the policy
// requests one and status is non-empty, then the policy header, then the
// CRLF-normalized payload. Everything shares the len(dst) budget, so the
// payload is what gets truncated when the composition would overflow. An
// empty payload yields prefix-only output (or nothing at all).
func composeMessage(dst []byte, payload []byte, policy *ChannelPolicy, status string) []byte {
	w := &boundWriter{buf: dst}
	if policy.addStatus && len(status) > 0 {
		if len(status) > MAX_STATUS_LEN {
			status = status[:MAX_STATUS_LEN]
		}
		w.writeString(status)
		w.writeString(": ")
	}
	w.writeString(policy.header)
	normalizeCRLF(w, payload)
	return w.bytes()
}
