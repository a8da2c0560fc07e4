// Copyright (c) 2026 Himanshu Sugha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "testing"

func TestAddressString(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{"three bytes", Address{1, 2, 3}, "0x010203"},
		{"single zero byte", Address{0}, "0x00"},
		{"empty", Address{}, "0x"},
		{"high bytes", Address{0xde, 0xad, 0xbe, 0xef}, "0xdeadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Address
		wantErr bool
	}{
		{"with prefix", "0x010203", Address{1, 2, 3}, false},
		{"without prefix", "010203", Address{1, 2, 3}, false},
		{"uppercase hex", "0xDEADBEEF", Address{0xde, 0xad, 0xbe, 0xef}, false},
		{"single byte", "0x00", Address{0}, false},
		{"empty", "", nil, true},
		{"prefix only", "0x", nil, true},
		{"odd length", "0x123", nil, true},
		{"not hex", "0xzz", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAddress(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseAddress(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAddressRoundTrip(t *testing.T) {
	orig := Address{0x01, 0xab, 0xff}
	parsed, err := ParseAddress(orig.String())
	if err != nil {
		t.Fatalf("ParseAddress() error = %v", err)
	}
	if !parsed.Equal(orig) {
		t.Errorf("round trip = %v, want %v", parsed, orig)
	}
}

func TestAddressEqual(t *testing.T) {
	a := Address{1, 2, 3}
	if !a.Equal(Address{1, 2, 3}) {
		t.Error("identical addresses should be equal")
	}
	if a.Equal(Address{1, 2}) {
		t.Error("different-length addresses should not be equal")
	}
	if a.Equal(Address{1, 2, 4}) {
		t.Error("different bytes should not be equal")
	}
}

func TestGenerateAddress(t *testing.T) {
	addr, err := GenerateAddress(20)
	if err != nil {
		t.Fatalf("GenerateAddress() error = %v", err)
	}
	if len(addr) != 20 {
		t.Errorf("GenerateAddress() length = %d, want 20", len(addr))
	}

	// Two generated addresses should differ.
	other, err := GenerateAddress(20)
	if err != nil {
		t.Fatalf("GenerateAddress() error = %v", err)
	}
	if addr.Equal(other) {
		t.Error("GenerateAddress() produced duplicate addresses (extremely unlikely)")
	}
}
