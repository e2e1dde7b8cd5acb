package message

import "fmt"

// fieldKind identifies which typed value shape a schema field carries,
// per the table in the specification's data model.
type fieldKind int

const (
	kindString fieldKind = iota
	kindVersionTag
	kindVersionSet
	kindHeartBeat
	kindAckMode
	kindContentLength
)

// headerField is one declared header slot in a frame's schema entry.
type headerField struct {
	name         string
	kind         fieldKind
	required     bool
	hasDefault   bool
	defaultValue interface{} // only meaningful when hasDefault is true
}

func reqField(name string, kind fieldKind) headerField {
	return headerField{name: name, kind: kind, required: true}
}

func optField(name string, kind fieldKind) headerField {
	return headerField{name: name, kind: kind}
}

func defaultField(name string, kind fieldKind, def interface{}) headerField {
	return headerField{name: name, kind: kind, hasDefault: true, defaultValue: def}
}

// frameSpec is one entry of the frame schema. It drives the parser, the
// renderer and the builders' required-field and default checks. The typed
// accessors, constructors and builder setters in client_frames.go and
// server_frames.go are written out per command and are not derived from it.
type frameSpec struct {
	command     string // canonical wire token; render always emits this
	aliases     []string
	direction   Direction
	fields      []headerField // declared order: also the render order
	allowCustom bool
	allowBody   bool
}

func (s *frameSpec) fieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

func (s *frameSpec) field(name string) (headerField, bool) {
	for _, f := range s.fields {
		if f.name == name {
			return f, true
		}
	}
	return headerField{}, false
}

// clientSchema is the frame schema for every command a client may send.
var clientSchema = map[string]*frameSpec{
	cmdAbort: {
		command:   cmdAbort,
		direction: DirectionClient,
		fields:    []headerField{reqField(Transaction, kindString)},
	},
	cmdAck: {
		command:   cmdAck,
		direction: DirectionClient,
		fields: []headerField{
			reqField(ID, kindString),
			reqField(Transaction, kindString),
			optField(Receipt, kindString),
		},
	},
	cmdBegin: {
		command:   cmdBegin,
		direction: DirectionClient,
		fields: []headerField{
			reqField(Transaction, kindString),
			optField(Receipt, kindString),
		},
	},
	cmdCommit: {
		command:   cmdCommit,
		direction: DirectionClient,
		fields: []headerField{
			reqField(Transaction, kindString),
			optField(Receipt, kindString),
		},
	},
	cmdConnect: {
		command:   cmdConnect,
		aliases:   []string{cmdStomp},
		direction: DirectionClient,
		fields: []headerField{
			reqField(Host, kindString),
			reqField(AcceptVersion, kindVersionSet),
			defaultField(HeartBeat, kindHeartBeat, HeartBeatValue{0, 0}),
			optField(Login, kindString),
			optField(Passcode, kindString),
		},
	},
	cmdDisconnect: {
		command:   cmdDisconnect,
		direction: DirectionClient,
		fields:    []headerField{reqField(Receipt, kindString)},
	},
	cmdNack: {
		command:   cmdNack,
		direction: DirectionClient,
		fields: []headerField{
			reqField(ID, kindString),
			reqField(Transaction, kindString),
			optField(Receipt, kindString),
		},
	},
	cmdSend: {
		command:   cmdSend,
		direction: DirectionClient,
		fields: []headerField{
			reqField(Destination, kindString),
			optField(ContentType, kindString),
			optField(ContentLength, kindContentLength),
			optField(Transaction, kindString),
			optField(Receipt, kindString),
		},
		allowCustom: true,
		allowBody:   true,
	},
	cmdSubscribe: {
		command:   cmdSubscribe,
		direction: DirectionClient,
		fields: []headerField{
			reqField(Destination, kindString),
			reqField(ID, kindString),
			defaultField(Ack, kindAckMode, AckAuto),
			optField(Receipt, kindString),
		},
		allowCustom: true,
	},
	cmdUnsubscribe: {
		command:   cmdUnsubscribe,
		direction: DirectionClient,
		fields: []headerField{
			reqField(ID, kindString),
			optField(Receipt, kindString),
		},
	},
}

// serverSchema is the frame schema for every command a server may send.
var serverSchema = map[string]*frameSpec{
	cmdConnected: {
		command:   cmdConnected,
		direction: DirectionServer,
		fields: []headerField{
			reqField(Version, kindVersionTag),
			optField(HeartBeat, kindHeartBeat),
			optField(Session, kindString),
			optField(Server, kindString),
		},
	},
	cmdReceipt: {
		command:   cmdReceipt,
		direction: DirectionServer,
		fields:    []headerField{reqField(ReceiptID, kindString)},
	},
	cmdError: {
		command:     cmdError,
		direction:   DirectionServer,
		allowCustom: true,
		allowBody:   true,
	},
	cmdMessage: {
		command:   cmdMessage,
		direction: DirectionServer,
		fields: []headerField{
			reqField(MessageID, kindString),
			reqField(Destination, kindString),
			reqField(Subscription, kindString),
			optField(ContentType, kindString),
			optField(ContentLength, kindContentLength),
		},
		allowBody: true,
	},
}

// lookupSchema resolves a wire command token against a schema map,
// following command aliases (currently only STOMP -> CONNECT).
func lookupSchema(schema map[string]*frameSpec, token string) (*frameSpec, bool) {
	if spec, ok := schema[token]; ok {
		return spec, true
	}
	for _, spec := range schema {
		for _, alias := range spec.aliases {
			if alias == token {
				return spec, true
			}
		}
	}
	return nil, false
}

// parseFieldValue decodes a header's raw (already-unescaped) bytes into
// the typed value its schema field kind specifies.
func parseFieldValue(kind fieldKind, raw []byte) (interface{}, error) {
	switch kind {
	case kindString:
		return b2s(raw), nil
	case kindVersionTag:
		return ParseVersionTag(raw)
	case kindVersionSet:
		return ParseVersionSet(raw)
	case kindHeartBeat:
		return ParseHeartBeatValue(raw)
	case kindAckMode:
		return ParseAckMode(raw)
	case kindContentLength:
		return ParseContentLengthValue(raw)
	default:
		return nil, fmt.Errorf("stomp: unknown field kind %d", kind)
	}
}

// renderFieldValue renders a typed field value back to wire text. It does
// not escape; escaping is applied by the caller once, uniformly, to every
// field and custom header.
func renderFieldValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
