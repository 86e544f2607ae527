package mclog

/*
Convenience channel-specific helpers for common write targets.
These are thin wrappers around Write that provide inline hints in editors
and documentation tools. All of them behave like Write: no return value,
sink failures are reported to the engine's fallback writer.
*/

// LogError writes a formatted message to the error channel: the error file
// and stderr, with the "Error: " header and the status prefix.
//
// Use
//
//	LogErr(e error)
//
// to log an error value instead of a format string.
func (e *Engine) LogError(format string, args ...any) {
	e.Write(CHN_ERROR, format, args...)
}

// LogErr writes an error value to the error channel. Semantically equivalent
// to calling
//
//	LogError("%s", err)
//
// but clearer at call sites when you already have an error object.
func (e *Engine) LogErr(err error) {
	e.Write(CHN_ERROR, "%s", err.Error())
}

// LogWarn writes a formatted message to the warning channel: the warning
// file and stderr, with the "Warning: " header and the status prefix.
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (e *Engine) LogWarn(format string, args ...any) {
	e.Write(CHN_WARNING, format, args...)
}

// LogScreen writes a formatted message to the screen channel: stdout only,
// no file, no header, no status prefix. Use for user-facing progress output.
func (e *Engine) LogScreen(format string, args ...any) {
	e.Write(CHN_SCREEN, format, args...)
}

// LogNote writes a formatted message to the note channel: the log file and
// stdout, no header, no status prefix. Use for normal operational messages.
func (e *Engine) LogNote(format string, args ...any) {
	e.Write(CHN_NOTE, format, args...)
}

// LogFile writes a formatted message to the file-only channel: the file
// sink with the status prefix, nothing on screen. Use for detail that would
// drown out interactive output.
func (e *Engine) LogFile(format string, args ...any) {
	e.Write(CHN_FILE, format, args...)
}
