// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigint

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"-1234"`.
	JSONModeString = iota
	// JSONModeNumber produces values as bare json numbers, like `-1234`.
	// Most json decoders can't read such numbers without losing precision.
	JSONModeNumber
)

// MarshalJSON marshals x according to current JSONMode.
func (x Int) MarshalJSON() ([]byte, error) {
	switch JSONMode {
	case JSONModeNumber:
		return x.appendDecimal(nil), nil
	default:
		buf := append(make([]byte, 0, len(x.mag())*LimbDigits+3), '"')
		buf = x.appendDecimal(buf)
		return append(buf, '"'), nil
	}
}

// UnmarshalJSON unmarshals a quoted string or a number into x.
// A json null leaves x unchanged.
func (x *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("bad json string: %w", err)
		}
		s = unquoted
	}
	v, err := FromString(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return x.appendDecimal(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalMsgpack encodes x as a msgpack string holding its decimal representation.
func (x Int) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(x.String())
}

// UnmarshalMsgpack decodes a value produced by MarshalMsgpack.
func (x *Int) UnmarshalMsgpack(data []byte) error {
	var s string
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}
