package message

import "bytes"

// framer is implemented by every concrete frame type (and, transitively,
// by ClientFrame and ServerFrame). It is unexported so Render only
// accepts frames this package produced.
type framer interface {
	raw() *rawFrame
}

// Render serialises a frame to its canonical STOMP 1.2 wire form: command
// line, header lines in schema-declared order followed by custom headers
// in insertion order, a blank line, the body if present, and a
// terminating NUL. Render is a pure function of f: calling it twice on
// the same frame produces byte-identical output.
func Render(f framer) []byte {
	return renderFrame(f.raw())
}

func renderFrame(f *rawFrame) []byte {
	var buf bytes.Buffer

	noEscape := escapesDisabled(f.spec.command)
	buf.WriteString(f.spec.command)
	buf.WriteByte('\n')

	writeHeader := func(name, value string) {
		if !noEscape {
			name = escape(name)
			value = escape(value)
		}
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(value)
		buf.WriteByte('\n')
	}

	for _, field := range f.spec.fields {
		v, ok := f.fields[field.name]
		if !ok {
			continue
		}
		writeHeader(field.name, renderFieldValue(v))
	}
	for _, c := range f.custom {
		writeHeader(c.Name(), c.Value())
	}

	buf.WriteByte('\n')
	if f.hasBody {
		buf.Write(f.body)
	}
	buf.WriteByte(0)

	return buf.Bytes()
}
