package message

import "fmt"

// UnknownCommandError is returned when a frame's command token is not in
// the schema for the direction it was parsed with.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("stomp: unknown command %q", e.Token)
}

// MalformedHeaderError is returned when a header line has no ':', or
// contains an illegal escape sequence.
type MalformedHeaderError struct {
	Line string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("stomp: malformed header line %q", e.Line)
}

// MissingHeaderError is returned when a header required by the schema for
// the frame's command is absent.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("stomp: missing required header %q", e.Header)
}

// InvalidHeaderValueError is returned when a known header's value fails
// its typed parse (bad integer, unknown version tag, malformed heart-beat
// pair, unknown ack mode).
type InvalidHeaderValueError struct {
	Header string
	Reason string
}

func (e *InvalidHeaderValueError) Error() string {
	return fmt.Sprintf("stomp: invalid value for header %q: %s", e.Header, e.Reason)
}

// InvalidBodyError is returned for content-length/body mismatches, a
// missing terminating NUL, an unterminated frame, or a body present on a
// frame whose schema forbids one.
type InvalidBodyError struct {
	Reason string
}

func (e *InvalidBodyError) Error() string {
	return fmt.Sprintf("stomp: invalid body: %s", e.Reason)
}

// WrongDirectionError is returned when ParseClient is handed a command
// that belongs to the server schema, or ParseServer is handed one that
// belongs to the client schema.
type WrongDirectionError struct {
	Command  string
	Expected Direction
}

func (e *WrongDirectionError) Error() string {
	return fmt.Sprintf("stomp: command %q is not a valid %s frame", e.Command, e.Expected)
}

// MissingRequiredError is returned by a frame builder's Build method when
// a required field was never set.
type MissingRequiredError struct {
	Field string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("stomp: missing required field %q", e.Field)
}
