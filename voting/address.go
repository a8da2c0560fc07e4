// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is an opaque byte sequence identifying an actor. The same type
// serves as admin identity and voter identity; equality is byte-wise.
type Address []byte

// String renders the address as 0x followed by lowercase hex, so
// Address{1, 2, 3} formats as "0x010203".
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a)
}

// Equal reports whether two addresses have identical bytes.
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a, b)
}

// key returns the map-key form of the address.
func (a Address) key() string {
	return string(a)
}

// clone returns an independent copy so registry state cannot be mutated
// through a caller-held slice.
func (a Address) clone() Address {
	return Address(bytes.Clone(a))
}

// ParseAddress decodes a hex address string. A leading "0x" is optional.
func ParseAddress(s string) (Address, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("invalid address %q: empty", s)
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return Address(b), nil
}

// GenerateAddress creates a random address of the specified byte length.
func GenerateAddress(byteLen int) (Address, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random address: %w", err)
	}
	return Address(b), nil
}
