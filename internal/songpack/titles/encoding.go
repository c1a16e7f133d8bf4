package titles

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/shiroemons/go-songpack/internal/songpack/fileutil"
)

// Encoding はUTF-8として読めないタイトルに使う代替の文字コードです
type Encoding string

const (
	// EncodingLatin1 はISO-8859-1として読みます（デフォルト）
	EncodingLatin1 Encoding = "latin1"
	// EncodingShiftJIS はShift-JISとして読みます。変換できない場合はLatin-1になります
	EncodingShiftJIS Encoding = "shiftjis"
)

// ParseEncoding は文字コードの設定値を解析します
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(s)) {
	case "", EncodingLatin1:
		return EncodingLatin1, nil
	case EncodingShiftJIS, "shift_jis", "sjis":
		return EncodingShiftJIS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// decodeText はUTF-8で読み、失敗した場合は代替の文字コードで読みます
func (e Encoding) decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if e == EncodingShiftJIS {
		if s, err := fileutil.FromShiftJIS(string(raw)); err == nil {
			return s
		}
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(s)
}

// decodeASCII はASCII以外のバイトを捨てて文字列にします
func decodeASCII(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c < 0x80 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// replaceBytes は from に含まれるバイトを to に置き換えたコピーを返します
func replaceBytes(raw []byte, to byte, from ...byte) []byte {
	out := make([]byte, len(raw))
	for i, c := range raw {
		out[i] = c
		for _, f := range from {
			if c == f {
				out[i] = to
				break
			}
		}
	}
	return out
}

// normalizeID は曲IDを比較用に正規化します
func normalizeID(raw []byte) string {
	return strings.ToLower(strings.TrimSpace(decodeASCII(raw)))
}
