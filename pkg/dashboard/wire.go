package dashboard

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MessageType identifies a dashboard protocol message.
type MessageType uint8

const (
	// TypeHello is the client's opening message carrying its auth token.
	TypeHello MessageType = 1
	// TypeWelcome is the server's handshake acceptance.
	TypeWelcome MessageType = 2
	// TypeSnapshot carries the full entry set after the handshake.
	TypeSnapshot MessageType = 3
	// TypeUpdate carries changed entries on a flush.
	TypeUpdate MessageType = 4
	// TypeWrite is a client write to a writable entry.
	TypeWrite MessageType = 5
	// TypeError reports a rejected message.
	TypeError MessageType = 6
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case TypeHello:
		return "HELLO"
	case TypeWelcome:
		return "WELCOME"
	case TypeSnapshot:
		return "SNAPSHOT"
	case TypeUpdate:
		return "UPDATE"
	case TypeWrite:
		return "WRITE"
	case TypeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Message is the dashboard protocol envelope.
// CBOR encoding uses integer keys for compactness.
type Message struct {
	// Type discriminates the message.
	Type MessageType `cbor:"1,keyasint"`

	// Token is the client auth token (Hello only).
	Token []byte `cbor:"2,keyasint,omitempty"`

	// ClientID is the session ID assigned by the server (Welcome only).
	ClientID string `cbor:"3,keyasint,omitempty"`

	// Entries carries entry states (Snapshot, Update).
	Entries []EntryState `cbor:"4,keyasint,omitempty"`

	// Path is the target entry path (Write).
	Path string `cbor:"5,keyasint,omitempty"`

	// Value is the written value (Write).
	Value any `cbor:"6,keyasint,omitempty"`

	// Error is the rejection reason (Error only).
	Error string `cbor:"7,keyasint,omitempty"`
}

// EntryState is an entry's wire representation.
type EntryState struct {
	// Path is the full entry path.
	Path string `cbor:"1,keyasint"`

	// Kind is the entry's value kind.
	Kind ValueKind `cbor:"2,keyasint"`

	// Value is the current value.
	Value any `cbor:"3,keyasint,omitempty"`

	// Writable indicates clients may write this entry.
	Writable bool `cbor:"4,keyasint,omitempty"`

	// Widget is a display hint for clients.
	Widget string `cbor:"5,keyasint,omitempty"`
}

// wireEncMode is the CBOR encoder mode for dashboard messages.
var wireEncMode cbor.EncMode

// wireDecMode is the CBOR decoder mode for dashboard messages.
var wireDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	wireEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create dashboard CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	wireDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create dashboard CBOR decoder mode: %v", err))
	}
}

// EncodeMessage encodes a dashboard message to CBOR bytes.
func EncodeMessage(m Message) ([]byte, error) {
	return wireEncMode.Marshal(m)
}

// DecodeMessage decodes CBOR bytes into a dashboard message.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := wireDecMode.Unmarshal(data, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
