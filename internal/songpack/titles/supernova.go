package titles

import "strings"

// Supernova は「曲ID → タイトル(複数可) → 次の曲ID」の並びを読むスキャナーです
//
// SuperNOVA / SuperNOVA2 では曲IDとタイトル、タイトル同士がNUL1つで区切られています。
// タイトルは先頭の2つだけを使い、3つ目以降は捨てます。
type Supernova struct {
	Encoding Encoding
}

// Name はパーサー名を返します
func (s *Supernova) Name() string {
	return ParserSupernova
}

// Scan はタイトル表を走査します
func (s *Supernova) Scan(data []byte, start, end int) Table {
	table := make(Table)
	c := newCursor(data, start, end)

	for !c.done() {
		tok, ok := c.readCString()
		if !ok {
			break
		}
		// 区切りのNULが余分に入っている場合は読み飛ばす
		if len(tok.Raw) == 0 {
			continue
		}
		if Classify(tok.Raw, MaxIDLen) != KindIdentifier {
			continue
		}
		id := normalizeID(tok.Raw)

		var found []string
		for !c.done() {
			save := c.pos
			next, ok := c.readCString()
			if !ok || len(next.Raw) == 0 {
				break
			}
			// 次の曲IDは消費せずに戻す
			if Classify(next.Raw, MaxIDLen) == KindIdentifier {
				c.pos = save
				break
			}
			found = append(found, strings.TrimSpace(s.Encoding.decodeText(next.Raw)))
		}

		switch len(found) {
		case 0:
			table[id] = placeholderPair()
		case 1:
			table[id] = []string{found[0], found[0]}
		default:
			table[id] = []string{found[0], found[1]}
		}
	}

	return table
}
