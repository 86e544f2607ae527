package mclog

/*********************************************************************************
io.Writer interface implementation

Chn(channel) adapts a single engine channel to io.Writer so it can be used
with fmt.Fprintf and other formatting helpers. The semantics are:
 - Chn(ch) returns a writer view bound to the given channel.
 - Write(p) routes the bytes through the same status-prefix and CRLF
   normalization pass as Engine.Write and returns len(p).

This allows patterns like:
  fmt.Fprintf(engine.Chn(CHN_NOTE), "loaded %d tracks", n)
But remember that the engine itself is not thread-safe!
*/

import "io"

// channelWriter is the io.Writer view of a single engine channel.
type channelWriter struct {
	engine *Engine
	ch     Channel
}

// Chn returns an io.Writer bound to the given channel. Requesting an
// undefined channel is a programming error and panics, same as Write.
func (e *Engine) Chn(ch Channel) io.Writer {
	_ = policyOf(ch) // bounds check
	return &channelWriter{engine: e, ch: ch}
}

// Write implements io.Writer. It forwards the provided bytes to the bound
// channel and returns n=len(p). If the payload is nil it is treated as a
// zero-length write with no error.
func (w *channelWriter) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	w.engine.Write(w.ch, "%s", p)
	return len(p), nil
}
