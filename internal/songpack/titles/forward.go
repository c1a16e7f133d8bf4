package titles

import "strings"

// Forward は「曲ID → タイトル [→ アーティスト]」の並びを読むスキャナーです
//
// 曲IDの直後にまた曲IDが来た場合、その曲はタイトルなし（孤立）として記録します。
// アーティストは読み飛ばすだけで出力には含めません。
type Forward struct{}

// Name はパーサー名を返します
func (s *Forward) Name() string {
	return ParserForward
}

// Scan はタイトル表を走査します
func (s *Forward) Scan(data []byte, start, end int) Table {
	table, _ := s.ScanWithArtists(data, start, end)
	return table
}

// ScanWithArtists はタイトル表とあわせて、読み飛ばしたアーティスト名を返します
func (s *Forward) ScanWithArtists(data []byte, start, end int) (Table, map[string]string) {
	table := make(Table)
	artists := make(map[string]string)
	c := newCursor(data, start, end)

	for !c.done() {
		rawID := c.readRun()
		if len(rawID) == 0 {
			break
		}
		id := normalizeID(rawID)

		c.skipNULs()

		// 次も曲IDならタイトルのない孤立した曲
		if c.peekShortID() {
			table[id] = placeholderPair()
			continue
		}

		raw := replaceBytes(c.readRun(), ' ', '\r')
		title := strings.TrimSpace(decodeASCII(raw))

		c.skipNULs()

		if !c.done() && !c.peekShortID() {
			artist := strings.TrimSpace(decodeASCII(c.readRun()))
			c.skipNULs()
			if id != "" {
				artists[id] = artist
			}
		}

		if id == "" {
			continue
		}
		if title == "" {
			table[id] = placeholderPair()
			continue
		}
		table[id] = []string{title, title}
	}

	return table, artists
}
