package titles

import (
	"bytes"

	"github.com/dlclark/regexp2"
)

// Kind はトークンの種類です
type Kind int

const (
	// KindUnknown は空のトークン
	KindUnknown Kind = iota
	// KindIdentifier は短い曲ID
	KindIdentifier
	// KindTitle はタイトル（または曲IDに見えないその他の文字列）
	KindTitle
)

// String はKindの名前を返します
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindTitle:
		return "title"
	}
	return "unknown"
}

// Token はNUL区切りで切り出した1つのトークンです
type Token struct {
	Kind  Kind
	Raw   []byte
	Start int // データ内の開始位置
}

// 曲IDの長さ
const (
	MinIDLen     = 4
	MaxIDLen     = 5
	MaxWideIDLen = 6
)

// 英小文字と数字のみで、数字だけではない文字列
var (
	shortIDPattern = regexp2.MustCompile(`^(?![0-9]+\z)[a-z0-9]{4,5}\z`, regexp2.None)
	wideIDPattern  = regexp2.MustCompile(`^(?![0-9]+\z)[a-z0-9]{4,6}\z`, regexp2.None)
)

// IsIdentifier は raw が maxLen 文字以下の曲IDに見えるか判定します
func IsIdentifier(raw []byte, maxLen int) bool {
	if len(raw) < MinIDLen || len(raw) > maxLen {
		return false
	}
	if bytes.IndexByte(raw, 0x00) >= 0 {
		return false
	}
	pattern := shortIDPattern
	if maxLen > MaxIDLen {
		pattern = wideIDPattern
	}
	ok, err := pattern.MatchString(string(raw))
	return err == nil && ok
}

// Classify はトークンの種類を判定します
func Classify(raw []byte, maxLen int) Kind {
	if len(raw) == 0 {
		return KindUnknown
	}
	if IsIdentifier(raw, maxLen) {
		return KindIdentifier
	}
	return KindTitle
}

// cursor はバイト列の [pos, end) を走査します
type cursor struct {
	data []byte
	pos  int
	end  int
}

// newCursor は範囲をデータ長に収めたcursorを作成します
func newCursor(data []byte, start, end int) *cursor {
	if end > len(data) {
		end = len(data)
	}
	if end < 0 {
		end = 0
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	return &cursor{data: data, pos: start, end: end}
}

func (c *cursor) done() bool {
	return c.pos >= c.end
}

// skipNULs は連続するNULを読み飛ばします
func (c *cursor) skipNULs() {
	for c.pos < c.end && c.data[c.pos] == 0x00 {
		c.pos++
	}
}

// readRun は次のNULまたは範囲の終端までを読み込みます。NUL自体は消費しません
func (c *cursor) readRun() []byte {
	start := c.pos
	for c.pos < c.end && c.data[c.pos] != 0x00 {
		c.pos++
	}
	return c.data[start:c.pos]
}

// readCString はNUL終端の文字列を読み込み、NULの次へ進みます
// 範囲内に終端がない場合は ok=false を返し、位置は変わりません
func (c *cursor) readCString() (Token, bool) {
	idx := bytes.IndexByte(c.data[c.pos:c.end], 0x00)
	if idx < 0 {
		return Token{}, false
	}
	tok := Token{Raw: c.data[c.pos : c.pos+idx], Start: c.pos}
	c.pos += idx + 1
	return tok, true
}

// peekShortID はカーソル位置に4〜5文字の曲IDがあり、その後に2つ以上のNULが続くか判定します
func (c *cursor) peekShortID() bool {
	for ln := MinIDLen; ln <= MaxIDLen; ln++ {
		if c.pos+ln > c.end {
			continue
		}
		if !IsIdentifier(c.data[c.pos:c.pos+ln], MaxIDLen) {
			continue
		}
		zeros := 0
		for j := c.pos + ln; j < c.end && c.data[j] == 0x00; j++ {
			zeros++
		}
		if zeros >= 2 {
			return true
		}
	}
	return false
}
