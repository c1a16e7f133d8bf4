package titles

import "strings"

// Reverse は「タイトル(複数可) → 曲ID」の並びを読むスキャナーです
//
// 曲IDが現れるまでのタイトルをまとめてその曲に割り当てます。
// 元データ側で孤立したタイトルがあると、別の曲のタイトルが別名に混ざることがあります。
type Reverse struct {
	Encoding Encoding
}

// Name はパーサー名を返します
func (s *Reverse) Name() string {
	return ParserReverse
}

// Scan はタイトル表を走査します
func (s *Reverse) Scan(data []byte, start, end int) Table {
	table := make(Table)
	c := newCursor(data, start, end)
	var pending []string

	for !c.done() {
		c.skipNULs()
		if c.done() {
			break
		}
		tok, ok := c.readCString()
		if !ok {
			break
		}

		switch Classify(tok.Raw, MaxWideIDLen) {
		case KindIdentifier:
			id := normalizeID(tok.Raw)
			if len(pending) > 0 {
				table[id] = pending
			} else {
				table[id] = []string{Placeholder}
			}
			pending = nil
		case KindTitle:
			raw := replaceBytes(tok.Raw, ' ', '\r', '\n')
			if title := strings.TrimSpace(s.Encoding.decodeText(raw)); title != "" {
				pending = append(pending, title)
			}
		}
	}

	return table
}
