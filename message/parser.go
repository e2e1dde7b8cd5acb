package message

import "bytes"

// ParseClient parses buf as a single STOMP frame sent by a client. The
// returned ClientFrame, and every slice reachable from it (header values,
// custom header names/values, body), borrows from buf; buf's backing
// array is retained by the frame and must not be reused by the caller.
// The exception is a header name or value that contains escape
// sequences: it is unescaped into a newly allocated slice.
func ParseClient(buf []byte) (ClientFrame, error) {
	raw, err := parseFrame(buf, clientSchema, serverSchema, DirectionClient)
	if err != nil {
		return nil, err
	}
	return wrapClientFrame(raw), nil
}

// ParseServer parses buf as a single STOMP frame sent by a server, with
// the same borrowing contract as ParseClient.
func ParseServer(buf []byte) (ServerFrame, error) {
	raw, err := parseFrame(buf, serverSchema, clientSchema, DirectionServer)
	if err != nil {
		return nil, err
	}
	return wrapServerFrame(raw), nil
}

// parseFrame implements the wire grammar in the specification's §4.5:
// command line, header lines to a blank line, then a body whose extent is
// governed by content-length if present, and otherwise runs up to the
// buffer's final byte, which must be the terminating NUL.
func parseFrame(buf []byte, schema, otherSchema map[string]*frameSpec, expected Direction) (*rawFrame, error) {
	command, rest, err := splitCommandLine(buf)
	if err != nil {
		return nil, err
	}

	spec, ok := lookupSchema(schema, command)
	if !ok {
		if _, inOther := lookupSchema(otherSchema, command); inOther {
			return nil, &WrongDirectionError{Command: command, Expected: expected}
		}
		return nil, &UnknownCommandError{Token: command}
	}

	headers, custom, afterHeaders, err := parseHeaderLines(rest, spec)
	if err != nil {
		return nil, err
	}

	for _, field := range spec.fields {
		if field.required {
			if _, ok := headers[field.name]; !ok {
				return nil, &MissingHeaderError{Header: field.name}
			}
		}
	}

	body, hasBody, err := extractBody(afterHeaders, headers, spec)
	if err != nil {
		return nil, err
	}

	return &rawFrame{
		spec:    spec,
		fields:  headers,
		custom:  custom,
		body:    body,
		hasBody: hasBody,
		buf:     buf,
	}, nil
}

// splitCommandLine extracts the command token (the text up to the first
// LF, with an optional trailing CR stripped) and returns the remainder of
// the buffer following that LF.
func splitCommandLine(buf []byte) (string, []byte, error) {
	idx := bytes.IndexByte(buf, '\n')
	if idx < 0 {
		return "", nil, &InvalidBodyError{Reason: "unterminated frame: no command line"}
	}
	line := buf[:idx]
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return b2s(line), buf[idx+1:], nil
}

// parseHeaderLines reads header lines up to (and consuming) the blank
// line that separates headers from the body. It returns the parsed known
// headers keyed by name, the custom headers in wire order, and the slice
// of buf starting immediately after the blank line.
func parseHeaderLines(buf []byte, spec *frameSpec) (map[string]interface{}, []CustomHeader, []byte, error) {
	headers := make(map[string]interface{}, len(spec.fields))
	var custom []CustomHeader
	noEscape := escapesDisabled(spec.command)

	for {
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			return nil, nil, nil, &InvalidBodyError{Reason: "unterminated frame: no blank line before body"}
		}
		line := bytes.TrimSuffix(buf[:idx], []byte{'\r'})
		buf = buf[idx+1:]

		if len(line) == 0 {
			return headers, custom, buf, nil
		}

		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, nil, nil, &MalformedHeaderError{Line: string(line)}
		}
		rawName, rawValue := line[:colon], line[colon+1:]

		var name, value []byte
		var err error
		if noEscape {
			name, value = rawName, rawValue
		} else {
			name, err = unescapeHeaderBytes(rawName)
			if err != nil {
				return nil, nil, nil, err
			}
			value, err = unescapeHeaderBytes(rawValue)
			if err != nil {
				return nil, nil, nil, err
			}
		}

		nameStr := b2s(name)
		if field, known := spec.field(nameStr); known {
			if _, seen := headers[nameStr]; seen {
				continue // first occurrence wins, STOMP 1.2 §3.1
			}
			parsed, err := parseFieldValue(field.kind, value)
			if err != nil {
				return nil, nil, nil, err
			}
			headers[nameStr] = parsed
		} else if spec.allowCustom {
			custom = append(custom, CustomHeader{name: name, value: value})
		}
		// else: unknown header on a frame that forbids custom headers; ignored.
	}
}

// extractBody implements the body-extent rules of §4.5 step 6.
func extractBody(buf []byte, headers map[string]interface{}, spec *frameSpec) ([]byte, bool, error) {
	if cl, ok := headers[ContentLength]; ok {
		n := int(cl.(ContentLengthValue))
		if n < 0 || n > len(buf) {
			return nil, false, &InvalidBodyError{Reason: "content-length exceeds available bytes"}
		}
		if n >= len(buf) || buf[n] != 0 {
			return nil, false, &InvalidBodyError{Reason: "missing terminating NUL after content-length bytes"}
		}
		body := buf[:n]
		if !spec.allowBody && len(body) > 0 {
			return nil, false, &InvalidBodyError{Reason: "body not permitted for this frame"}
		}
		return body, spec.allowBody, nil
	}

	// No content-length: this parser handles exactly one frame per input
	// buffer (see ParseClient), so the terminating NUL is structurally
	// the buffer's final byte rather than something to scan for. Scanning
	// forward for the first NUL would misidentify a NUL that is itself
	// part of a binary body as the terminator.
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		return nil, false, &InvalidBodyError{Reason: "unterminated frame: missing NUL terminator"}
	}
	body := buf[:len(buf)-1]
	if !spec.allowBody {
		if len(body) > 0 {
			return nil, false, &InvalidBodyError{Reason: "body not permitted for this frame"}
		}
		return nil, false, nil
	}
	return body, true, nil
}
