package mclog

/*
The logging engine facade: a single process-wide instance coordinating the
policy table, the formatter and the channel sink set. Exposes write,
configure, status, content query and close operations, and implements the
shutdown escalation (open a viewer on the error file when the error channel
received content).

Concurrency notes:
  - The engine performs no internal locking. All operations assume a single
    caller or externally serialized callers: interleaved use of Write,
    Configure and SetStatus from multiple goroutines would race.
  - Only the Default() accessor synchronizes, and only its own one-time
    initialization.
*/

import (
	"io"
	"os"
	"sync"
)

const (
	// Error messages used across engine operations (shared with tests).
	_ERROR_MESSAGE_UNDEFINED_CHANNEL = "undefined log channel"
	_ERROR_MESSAGE_NOT_CONFIGURED    = "log channel is not configured or already closed"
	_ERROR_MESSAGE_MSG_TOO_LONG      = "formatted log message exceeds buffer capacity"
	_ERROR_UNKNOWN_PANIC_TEXT        = "[no panic description]"
)

// Engine routes formatted messages to the channel sinks. The zero value is
// not usable: construct with Init or InitWithParams.
type Engine struct {
	sinks    sinkSet
	status   string                  // shared status prefix, set by SetStatus
	fallback io.Writer               // receives one-line reports of sink write failures
	viewer   func(path string) error // escalation launcher used by Shutdown
}

// Init creates an engine bound to the real standard streams and filesystem
// and configures it under DEFAULT_BASE_NAME.
//
// Preferred usage example:
//
//	func main() {
//	    log, err := mclog.Init()
//	    if err != nil { ... }
//	    defer log.Shutdown()
//	    ...
//	}
func Init() (*Engine, error) {
	return InitWithBase(DEFAULT_BASE_NAME)
}

// InitWithBase is Init with an explicit base path: each file-backed channel
// gets a sibling file base.<ext>.
func InitWithBase(base string) (*Engine, error) {
	e := InitWithParams(os.Stderr, os.Stdout, OpenFileSink)
	if err := e.Configure(base); err != nil {
		return nil, err
	}
	return e, nil
}

// InitWithParams constructs an engine with explicit stream and file
// collaborators (useful for tests and embedding). The returned engine is
// unconfigured: Configure must be called before the first write.
func InitWithParams(stde, stdo io.Writer, open FileOpener) *Engine {
	e := new(Engine)
	e.sinks.stderr = stde
	e.sinks.stdout = stdo
	e.sinks.open = open
	e.viewer = launchViewer
	e.SetFallback(os.Stderr)
	return e
}

// Configure (re)targets every channel under a new base path: open file sinks
// are closed first, then fresh files are created with the policy extension
// substituted and the creation banner written. Safe to call repeatedly.
// Content flags persist across reconfiguration (they reflect lifetime
// writes, not per-file writes).
func (e *Engine) Configure(base string) error {
	return e.sinks.configure(base)
}

// SetStatus replaces the shared status string injected before messages on
// channels whose policy requests a prefix. No length limit is enforced here;
// truncation to MAX_STATUS_LEN happens at format time.
func (e *Engine) SetStatus(status string) *Engine {
	e.status = status
	return e
}

// SetFallback sets the writer used to report the engine's own sink failures
// (the engine cannot usefully log those through itself). io.Discard is used
// instead of nil to silently drop fallback messages.
func (e *Engine) SetFallback(w io.Writer) *Engine {
	if w != nil {
		e.fallback = w
	} else {
		e.fallback = io.Discard
	}
	return e
}

// Write formats a message and routes it to the channel's sinks: the
// persisted file when the policy has an extension, and the bound standard
// stream when it has one. Sink I/O failures are reported to the fallback
// writer; contract violations (undefined channel, unconfigured engine,
// rendered message reaching MSG_BUFFER_SIZE) panic. Both formatting buffers
// are fixed-capacity scratch regions, transient per call and never shared.
func (e *Engine) Write(ch Channel, format string, args ...any) {
	li := policyOf(ch)
	var scratch, out [MSG_BUFFER_SIZE]byte
	payload := renderMessage(scratch[:], format, args...)
	data := composeMessage(out[:], payload, li, e.status)
	if err := e.sinks.write(ch, data); err != nil {
		e.handleWriteError(err.Error())
	}
}

// HasContent reports whether the channel ever received a write. The flag is
// set by the first write and never reset, not even by reconfiguration.
func (e *Engine) HasContent(ch Channel) bool {
	return e.sinks.hasContent(ch)
}

// Close flushes and closes every open channel file. Idempotent; writing
// after Close (without reconfiguring) is a contract violation.
func (e *Engine) Close() error {
	return e.sinks.close()
}

// Shutdown closes the engine and, if the error channel received any content,
// launches the external viewer on the error channel's file so the operator
// sees what went wrong. The escalation is best-effort: a launch failure is
// ignored, the process is already exiting. Intended to be invoked once by
// the composition root on exit.
func (e *Engine) Shutdown() {
	path := e.sinks.filePath(CHN_ERROR)
	e.Close()
	if !e.HasContent(CHN_ERROR) || path == "" {
		return
	}
	_ = e.viewer(path)
}

// handleWriteError writes a human-readable error message to the fallback
// writer.
func (e *Engine) handleWriteError(errormsg string) {
	if e.fallback != nil {
		e.fallback.Write([]byte(errormsg + "\n"))
	}
}

/////////////////////////////////////////////////////////////////////////////////////////

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the lazily-initialized process-wide engine, configured
// under DEFAULT_BASE_NAME on first use. Initialization is synchronized once;
// every other operation on the returned engine follows the usual
// single-caller contract. Prefer an explicitly constructed engine owned by
// the composition root; Default exists for global ergonomics.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = InitWithParams(os.Stderr, os.Stdout, OpenFileSink)
		if err := defaultEngine.Configure(DEFAULT_BASE_NAME); err != nil {
			defaultEngine.handleWriteError(err.Error())
		}
	})
	return defaultEngine
}
