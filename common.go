// A multi-channel logging package for Go. Formatted messages are routed to
// one of five fixed channels (error, warning, screen, note, file-only), each
// with its own destination policy: a persisted file, a standard stream, or
// nothing. Channels share a caller-settable status prefix, and the engine can
// escalate at shutdown by opening a viewer on the error file.
package mclog

/*
Defines the core data types used by the engine:
  - basetype and typed aliases for clarity
  - Channel: enumerated identity of a logging destination
  - ChannelPolicy: the static routing rule for a channel
  - channelState: per-channel runtime state owned by the engine

Also defines package-wide constants, the shipped policy table and range
check helpers.
*/

import "io"

type basetype byte // basetype is the underlying byte-sized representation used for enums

type Channel basetype   // Logging channel identity (alias for byte)
type stdTarget basetype // Standard stream selector of a channel policy

// ChannelPolicy is the static routing rule for a single channel. Exactly one
// policy exists per channel; the table is fixed at process start and never
// mutated.
type ChannelPolicy struct {
	ext       string    // log file extension; empty if the channel never persists
	header    string    // message header like "Error: "; may be empty
	target    stdTarget // standard stream that also receives the message
	addStatus bool      // true if the shared status string is prefixed
}

// channelState is the per-channel runtime state owned by the engine: the
// optional persisted file sink, the optional standard stream and the
// has-content flag.
type channelState struct {
	file       FileSink  // open only if the policy has a file extension
	std        io.Writer // bound from the policy's standard stream target
	hasContent bool      // true once a write to this channel was attempted
}

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Channel values. The trailing _CHN_MAX_for_checks_only is used as an
	// exclusive upper bound for iteration and range checks.
	CHN_ERROR   Channel = iota // error file and stderr
	CHN_WARNING                // warning file and stderr
	CHN_SCREEN                 // stdout only, no file, no status prefix
	CHN_NOTE                   // log file and stdout, no status prefix
	CHN_FILE                   // log file only
	_CHN_MAX_for_checks_only
)

const (
	// Standard stream targets of a channel policy.
	OUT_ERR stdTarget = iota
	OUT_OUT
	OUT_NULL
)

const (
	MSG_BUFFER_SIZE   = 2048            // hard cap on a fully composed message
	MAX_STATUS_LEN    = 1024            // status prefix truncation bound (< MSG_BUFFER_SIZE)
	DEFAULT_BASE_NAME = "Log"           // base path used when Configure is never called
	FILE_BANNER       = "File created " // first bytes of every created channel file
)

// channelPolicies is the shipped policy set, one entry per channel.
var channelPolicies = [_CHN_MAX_for_checks_only]ChannelPolicy{
	CHN_ERROR:   {ext: "err", header: "Error: ", target: OUT_ERR, addStatus: true},
	CHN_WARNING: {ext: "warn", header: "Warning: ", target: OUT_ERR, addStatus: true},
	CHN_SCREEN:  {ext: "", header: "", target: OUT_OUT, addStatus: false},
	CHN_NOTE:    {ext: "log", header: "", target: OUT_OUT, addStatus: false},
	CHN_FILE:    {ext: "file", header: "", target: OUT_NULL, addStatus: true},
}

/////////////////////////////////////////////////////////////////////////////////////////

// Generic byte range check helper.
func inRange[T ~byte](val, overlimit T) bool {
	return val < overlimit
}

// policyOf returns the static policy for a channel. Every defined channel has
// an entry; querying an undefined channel is a programming error and panics.
func policyOf(ch Channel) *ChannelPolicy {
	if !inRange(basetype(ch), basetype(_CHN_MAX_for_checks_only)) {
		panic(_ERROR_MESSAGE_UNDEFINED_CHANNEL)
	}
	return &channelPolicies[ch]
}

// Converts a panic value into a compact readable string (used when
// translating panics into fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
