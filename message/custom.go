package message

// CustomHeader is a (name, value) pair for a header not in the known set
// for a frame's command. Custom headers are preserved in the order they
// appeared on the wire; every instance is kept, unlike known headers
// where only the first occurrence of a given name is retained.
type CustomHeader struct {
	name  []byte
	value []byte
}

// NewCustomHeader constructs a CustomHeader for programmatic use.
func NewCustomHeader(name, value string) CustomHeader {
	return CustomHeader{name: []byte(name), value: []byte(value)}
}

// Name returns the custom header's name.
func (c CustomHeader) Name() string { return b2s(c.name) }

// Value returns the custom header's value.
func (c CustomHeader) Value() string { return b2s(c.value) }
