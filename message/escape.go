package message

import (
	"bytes"
	"strings"
)

// escapesDisabled reports whether header escaping is disabled for the
// given wire command, per STOMP 1.2: CONNECT, CONNECTED and the CONNECT
// alias STOMP never escape their header names or values.
func escapesDisabled(command string) bool {
	switch command {
	case cmdConnect, cmdStomp, cmdConnected:
		return true
	default:
		return false
	}
}

// escape applies the STOMP 1.2 header escape sequences: '\\' -> "\\\\",
// '\n' -> "\\n", '\r' -> "\\r", ':' -> "\\c". strings.Replacer makes a
// single pass over the input, so the backslashes inserted by one
// substitution are never escaped a second time.
var escapeReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"\n", "\\n",
	"\r", "\\r",
	":", "\\c",
)

func escape(s string) string {
	return escapeReplacer.Replace(s)
}

// unescapeHeaderBytes reverses escape. When raw contains no backslash it
// returns raw unmodified (the zero-copy common case: most header text has
// nothing to unescape); otherwise it allocates a new, shorter byte slice
// for the unescaped text. It fails if a backslash is not followed by one
// of the four legal escape characters.
func unescapeHeaderBytes(raw []byte) ([]byte, error) {
	idx := bytes.IndexByte(raw, '\\')
	if idx < 0 {
		return raw, nil
	}

	out := make([]byte, 0, len(raw))
	out = append(out, raw[:idx]...)
	for i := idx; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(raw) {
			return nil, &MalformedHeaderError{Line: string(raw)}
		}
		switch raw[i] {
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 'c':
			out = append(out, ':')
		default:
			return nil, &MalformedHeaderError{Line: string(raw)}
		}
	}
	return out, nil
}
