package message

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionTag is a single STOMP protocol version, e.g. "1.2".
type VersionTag string

// The STOMP protocol versions this codec knows about.
const (
	V10 VersionTag = "1.0"
	V11 VersionTag = "1.1"
	V12 VersionTag = "1.2"
)

// NewVersionTag constructs a VersionTag for programmatic use. It does not
// validate v; use ParseVersionTag to validate wire-supplied text.
func NewVersionTag(v string) VersionTag {
	return VersionTag(v)
}

// ParseVersionTag parses the value of a "version" header.
func ParseVersionTag(raw []byte) (VersionTag, error) {
	switch s := b2s(raw); VersionTag(s) {
	case V10, V11, V12:
		return VersionTag(s), nil
	default:
		return "", &InvalidHeaderValueError{Header: Version, Reason: fmt.Sprintf("unknown version tag %q", s)}
	}
}

func (v VersionTag) String() string { return string(v) }

// VersionSet is the non-empty, ordered list of version tags carried by an
// "accept-version" header.
type VersionSet []VersionTag

// NewVersionSet constructs a VersionSet for programmatic use.
func NewVersionSet(versions ...VersionTag) VersionSet {
	return VersionSet(versions)
}

// ParseVersionSet parses the value of an "accept-version" header. The
// list is returned in the order it appeared on the wire; this codec does
// not sort or otherwise interpret it (version selection is a broker
// policy concern, out of scope here).
func ParseVersionSet(raw []byte) (VersionSet, error) {
	s := b2s(raw)
	parts := strings.Split(s, ",")
	out := make(VersionSet, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch VersionTag(p) {
		case V10, V11, V12:
			out = append(out, VersionTag(p))
		default:
			return nil, &InvalidHeaderValueError{Header: AcceptVersion, Reason: fmt.Sprintf("unknown version tag %q", p)}
		}
	}
	if len(out) == 0 {
		return nil, &InvalidHeaderValueError{Header: AcceptVersion, Reason: "empty version list"}
	}
	return out, nil
}

func (vs VersionSet) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

// HeartBeatValue is the (supplied, expected) pair carried by a
// "heart-beat" header, both in milliseconds.
type HeartBeatValue struct {
	Supplied int
	Expected int
}

// NewHeartBeatValue constructs a HeartBeatValue for programmatic use.
func NewHeartBeatValue(supplied, expected int) HeartBeatValue {
	return HeartBeatValue{Supplied: supplied, Expected: expected}
}

// ParseHeartBeatValue parses the value of a "heart-beat" header: two
// non-negative, comma-separated integers.
func ParseHeartBeatValue(raw []byte) (HeartBeatValue, error) {
	s := b2s(raw)
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return HeartBeatValue{}, &InvalidHeaderValueError{Header: HeartBeat, Reason: fmt.Sprintf("malformed heart-beat %q", s)}
	}
	supplied, err := strconv.ParseUint(s[:comma], 10, 32)
	if err != nil {
		return HeartBeatValue{}, &InvalidHeaderValueError{Header: HeartBeat, Reason: fmt.Sprintf("malformed heart-beat %q", s)}
	}
	expected, err := strconv.ParseUint(s[comma+1:], 10, 32)
	if err != nil {
		return HeartBeatValue{}, &InvalidHeaderValueError{Header: HeartBeat, Reason: fmt.Sprintf("malformed heart-beat %q", s)}
	}
	return HeartBeatValue{Supplied: int(supplied), Expected: int(expected)}, nil
}

func (h HeartBeatValue) String() string {
	return strconv.Itoa(h.Supplied) + "," + strconv.Itoa(h.Expected)
}

// AckMode is the acknowledgement mode carried by an "ack" header.
type AckMode string

// The three STOMP 1.2 acknowledgement modes.
const (
	AckAuto             AckMode = "auto"
	AckClient           AckMode = "client"
	AckClientIndividual AckMode = "client-individual"
)

// NewAckMode constructs an AckMode for programmatic use. It does not
// validate m; use ParseAckMode to validate wire-supplied text.
func NewAckMode(m string) AckMode {
	return AckMode(m)
}

// ParseAckMode parses the value of an "ack" header.
func ParseAckMode(raw []byte) (AckMode, error) {
	switch s := b2s(raw); AckMode(s) {
	case AckAuto, AckClient, AckClientIndividual:
		return AckMode(s), nil
	default:
		return "", &InvalidHeaderValueError{Header: Ack, Reason: fmt.Sprintf("unknown ack mode %q", s)}
	}
}

func (a AckMode) String() string { return string(a) }

// ContentLengthValue is the non-negative byte count carried by a
// "content-length" header.
type ContentLengthValue int

// NewContentLengthValue constructs a ContentLengthValue for programmatic
// use.
func NewContentLengthValue(n int) ContentLengthValue {
	return ContentLengthValue(n)
}

// ParseContentLengthValue parses the value of a "content-length" header.
func ParseContentLengthValue(raw []byte) (ContentLengthValue, error) {
	s := b2s(raw)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, &InvalidHeaderValueError{Header: ContentLength, Reason: fmt.Sprintf("not a non-negative integer: %q", s)}
	}
	return ContentLengthValue(n), nil
}

func (c ContentLengthValue) String() string { return strconv.Itoa(int(c)) }
