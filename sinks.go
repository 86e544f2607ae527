package mclog

/*
Channel sink set: owns, per channel, the optional persisted file sink, the
optional standard stream and the has-content flag. Created together with the
engine, (re)targeted as a whole by configure and torn down by close. Owned
exclusively by the engine; nothing else mutates this state.
*/

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"
)

type sinkSet struct {
	states [_CHN_MAX_for_checks_only]channelState
	stderr io.Writer  // stream bound to channels with an OUT_ERR policy
	stdout io.Writer  // stream bound to channels with an OUT_OUT policy
	open   FileOpener // creates file sinks on (re)configuration
	ready  bool       // true between a successful configure and close
}

// channelPath derives the file path for a channel by replacing the base
// path's extension with the policy's one.
func channelPath(base, ext string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + ext
}

// configure closes any open file sinks, then recreates base.<ext> (fresh,
// truncating) for every channel whose policy persists to a file, writes the
// creation banner and binds the standard stream per policy. Must be invoked
// once before any write and is safe to invoke again to re-target all
// channels. Content flags are left alone: they are cumulative for the
// session, not per file.
func (s *sinkSet) configure(base string) error {
	s.close()
	banner := FILE_BANNER + time.Now().Format(time.ANSIC) + "\n"
	for ch := Channel(0); ch < _CHN_MAX_for_checks_only; ch++ {
		st := &s.states[ch]
		li := policyOf(ch)
		if li.ext != "" {
			file, err := s.open(channelPath(base, li.ext))
			if err != nil {
				return err
			}
			if _, err = file.Write([]byte(banner)); err != nil {
				return err
			}
			st.file = file
		}
		switch li.target {
		case OUT_ERR:
			st.std = s.stderr
		case OUT_OUT:
			st.std = s.stdout
		case OUT_NULL:
			st.std = nil
		}
	}
	s.ready = true
	return nil
}

// write appends data to the channel's open file (when the policy persists)
// and emits it to the bound standard stream (when the policy has one). A
// failing file sink does not suppress the stream write; the first error is
// returned. The content flag is set even for an empty composition: a write
// was attempted. Writing to an unconfigured or closed set is a programming
// error and panics.
func (s *sinkSet) write(ch Channel, data []byte) error {
	li := policyOf(ch)
	if !s.ready {
		panic(_ERROR_MESSAGE_NOT_CONFIGURED)
	}
	st := &s.states[ch]
	st.hasContent = true
	var firstErr error
	if li.ext != "" && len(data) > 0 {
		if st.file == nil || !st.file.IsOpen() {
			panic(_ERROR_MESSAGE_NOT_CONFIGURED)
		}
		if _, err := st.file.Write(data); err != nil {
			firstErr = err
		}
	}
	if st.std != nil {
		if err := writeStream(st.std, data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// writeStream emits data to a standard stream, converting a writer panic
// into an error so one broken stream does not take the process down.
func writeStream(w io.Writer, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("panic writing log to stream" + panicDesc(r))
		}
	}()
	_, err = w.Write(data)
	return
}

// close flushes and closes every open file sink. Idempotent: safe to call
// again, e.g. once explicitly and once more at shutdown. The first close
// error is returned, closing continues past failures.
func (s *sinkSet) close() error {
	var firstErr error
	for ch := Channel(0); ch < _CHN_MAX_for_checks_only; ch++ {
		file := s.states[ch].file
		if file != nil && file.IsOpen() {
			if err := file.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	s.ready = false
	return firstErr
}

// hasContent reports whether a write to the channel was ever attempted.
func (s *sinkSet) hasContent(ch Channel) bool {
	_ = policyOf(ch) // bounds check
	return s.states[ch].hasContent
}

// filePath returns the path of the channel's file sink, or "" when the
// channel has none (or was never configured).
func (s *sinkSet) filePath(ch Channel) string {
	if f := s.states[ch].file; f != nil {
		return f.Path()
	}
	return ""
}
