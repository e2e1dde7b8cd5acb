// Package message implements the frame model and wire codec for the STOMP
// 1.2 messaging protocol: parsing an opaque byte buffer into a strongly
// typed frame value, and rendering a frame value back into wire bytes.
//
// The codec borrows from the source buffer wherever the protocol allows
// it (header values, custom header names/values, and frame bodies are
// slices of the buffer handed to ParseClient or ParseServer, not copies of
// it; only header text containing escape sequences is unescaped into a
// new slice) and is otherwise
// a pure, synchronous, allocation-light leaf library: no transport, no
// session state, no broker semantics.
package message
