package token

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"ascii", "Name: Jane Doe\nEmail: jane@example.com"},
		{"vcard block", "BEGIN:VCARD\nVERSION:3.0\nN:Okoro;Amina;;;\nFN:Amina Okoro\nEND:VCARD"},
		{"multi-byte name", "FN:Søren Ångström"},
		{"cjk", "Name: 山田太郎"},
		{"emoji", "Office: HQ 🏢"},
		{"single char", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Encode(tt.payload)
			got := Decode(tok)
			if got != tt.payload {
				t.Errorf("round trip: got %q, want %q", got, tt.payload)
			}
		})
	}
}

func TestEncodeURLSafe(t *testing.T) {
	tok := Encode("payload with spaces, symbols +/= and ünïcode")
	for _, r := range tok {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		if !ok {
			t.Errorf("token contains non-URL-safe character %q", r)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base64", "!!!not-a-token!!!"},
		{"standard alphabet plus", "ab+cd"},
		{"embedded space", "abc def"},
		{"truncated group", "A"},
		{"invalid utf8 content", base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.input); got != "" {
				t.Errorf("Decode(%q) = %q, want empty string", tt.input, got)
			}
		})
	}
}

func TestDecodeToleratesPadding(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte("hello"))
	if !strings.Contains(padded, "=") {
		t.Fatalf("expected padded token, got %q", padded)
	}
	if got := Decode(padded); got != "hello" {
		t.Errorf("Decode(%q) = %q, want %q", padded, got, "hello")
	}
}
