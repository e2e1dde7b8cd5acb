package message

// rawFrame is the generic, schema-driven representation every concrete
// frame type wraps. It is the single place the parser populates and the
// renderer reads from; the per-command types in client_frames.go and
// server_frames.go are thin, typed views over it.
type rawFrame struct {
	spec    *frameSpec
	fields  map[string]interface{}
	custom  []CustomHeader
	body    []byte
	hasBody bool
	buf     []byte // retained so any borrowed field/body slice stays valid
}

func newRawFrame(spec *frameSpec) *rawFrame {
	return &rawFrame{spec: spec, fields: make(map[string]interface{}, len(spec.fields))}
}

func (f *rawFrame) getString(name string) (string, bool) {
	v, ok := f.fields[name]
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (f *rawFrame) getRequiredString(name string) string {
	s, _ := f.getString(name)
	return s
}

func (f *rawFrame) getVersionTag(name string) (VersionTag, bool) {
	v, ok := f.fields[name]
	if !ok {
		return "", false
	}
	return v.(VersionTag), true
}

func (f *rawFrame) getVersionSet(name string) (VersionSet, bool) {
	v, ok := f.fields[name]
	if !ok {
		return nil, false
	}
	return v.(VersionSet), true
}

func (f *rawFrame) getHeartBeat(name string) (HeartBeatValue, bool) {
	v, ok := f.fields[name]
	if !ok {
		return HeartBeatValue{}, false
	}
	return v.(HeartBeatValue), true
}

func (f *rawFrame) getAckMode(name string) (AckMode, bool) {
	v, ok := f.fields[name]
	if !ok {
		return "", false
	}
	return v.(AckMode), true
}

func (f *rawFrame) getContentLength(name string) (ContentLengthValue, bool) {
	v, ok := f.fields[name]
	if !ok {
		return 0, false
	}
	return v.(ContentLengthValue), true
}

// Custom returns the frame's custom headers, in the order they were set
// or parsed. It is nil when there are none, which is always the case for
// frames whose schema forbids custom headers.
func (f *rawFrame) Custom() []CustomHeader {
	return f.custom
}

// Body returns the frame's body and whether one is present. A frame whose
// schema forbids a body always returns (nil, false).
func (f *rawFrame) Body() ([]byte, bool) {
	if !f.hasBody {
		return nil, false
	}
	return f.body, true
}

// Command returns the canonical wire command token for this frame.
func (f *rawFrame) Command() string {
	return f.spec.command
}

// frameBuilder is the generic state shared by every per-command builder
// type: a fields map, optional custom headers, and an optional body,
// validated and defaulted against a schema at Build time.
type frameBuilder struct {
	spec   *frameSpec
	fields map[string]interface{}
	custom []CustomHeader
	body   []byte
	hasBody bool
}

func newFrameBuilder(spec *frameSpec) frameBuilder {
	return frameBuilder{spec: spec, fields: make(map[string]interface{})}
}

func (b *frameBuilder) setField(name string, value interface{}) {
	b.fields[name] = value
}

func (b *frameBuilder) addCustom(name, value string) {
	b.custom = append(b.custom, NewCustomHeader(name, value))
}

func (b *frameBuilder) setBody(body []byte) {
	b.body = body
	b.hasBody = true
}

// build validates every required field is set, materialises any
// optional-with-default field that was left unset, and returns the
// resulting rawFrame. It returns MissingRequiredError for the first
// unset required field found, in schema declaration order.
func (b *frameBuilder) build() (*rawFrame, error) {
	for _, field := range b.spec.fields {
		if _, ok := b.fields[field.name]; ok {
			continue
		}
		if field.required {
			return nil, &MissingRequiredError{Field: field.name}
		}
		if field.hasDefault {
			b.fields[field.name] = field.defaultValue
		}
	}
	return &rawFrame{
		spec:    b.spec,
		fields:  b.fields,
		custom:  b.custom,
		body:    b.body,
		hasBody: b.hasBody,
	}, nil
}
