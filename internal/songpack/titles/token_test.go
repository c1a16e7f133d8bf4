package titles

import (
	"errors"
	"testing"
)

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		raw    string
		maxLen int
		want   bool
	}{
		{"abcd", MaxIDLen, true},
		{"abc12", MaxIDLen, true},
		{"a1b2", MaxIDLen, true},
		{"abc", MaxIDLen, false},
		{"abcdef", MaxIDLen, false},
		{"abcdef", MaxWideIDLen, true},
		{"abcdefg", MaxWideIDLen, false},
		{"1234", MaxIDLen, false},
		{"123456", MaxWideIDLen, false},
		{"ABCD", MaxIDLen, false},
		{"ab d", MaxIDLen, false},
		{"ab\x00d", MaxIDLen, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := IsIdentifier([]byte(tt.raw), tt.maxLen); got != tt.want {
				t.Errorf("IsIdentifier(%q, %d) = %v, want %v", tt.raw, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if got := Classify(nil, MaxIDLen); got != KindUnknown {
		t.Errorf("Expected %s, got %s", KindUnknown, got)
	}
	if got := Classify([]byte("abcd"), MaxIDLen); got != KindIdentifier {
		t.Errorf("Expected %s, got %s", KindIdentifier, got)
	}
	if got := Classify([]byte("Song"), MaxIDLen); got != KindTitle {
		t.Errorf("Expected %s, got %s", KindTitle, got)
	}
}

func TestCursor_ReadCString(t *testing.T) {
	c := newCursor([]byte("ab\x00cd"), 0, 5)

	tok, ok := c.readCString()
	if !ok || string(tok.Raw) != "ab" || tok.Start != 0 {
		t.Fatalf("Unexpected token: %+v, %v", tok, ok)
	}
	if c.pos != 3 {
		t.Errorf("Expected pos 3, got %d", c.pos)
	}

	// 終端のない文字列は読まない
	if _, ok := c.readCString(); ok {
		t.Error("Expected no token without terminator")
	}
	if c.pos != 3 {
		t.Errorf("Expected pos to stay at 3, got %d", c.pos)
	}
}

func TestCursor_PeekShortID(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{name: "NULが2つ", data: "abcd\x00\x00", want: true},
		{name: "5文字の曲ID", data: "abcde\x00\x00Song", want: true},
		{name: "NULが1つ", data: "abcd\x00Song", want: false},
		{name: "数字だけ", data: "1234\x00\x00", want: false},
		{name: "範囲の終端", data: "abcd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor([]byte(tt.data), 0, len(tt.data))
			if got := c.peekShortID(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input     string
		want      Encoding
		wantError bool
	}{
		{input: "", want: EncodingLatin1},
		{input: "latin1", want: EncodingLatin1},
		{input: "SJIS", want: EncodingShiftJIS},
		{input: "shift_jis", want: EncodingShiftJIS},
		{input: "euc-jp", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEncoding(tt.input)
			if tt.wantError {
				if !errors.Is(err, ErrUnknownEncoding) {
					t.Errorf("Expected ErrUnknownEncoding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEncoding failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
