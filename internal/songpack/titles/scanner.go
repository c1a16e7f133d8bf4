// Package titles はバイナリ内のタイトル表から曲IDとタイトルの対応を復元します
//
// タイトル表にはレコード数や長さの情報がなく、NULの並びと内容から境界を推定します。
// 作品の世代ごとに並び順が異なるため、3種類のスキャナーを用意しています:
//   - parse_titles: 曲ID → タイトル [→ アーティスト]（DDR X より前）
//   - parse_titles_reverse: タイトル(複数可) → 曲ID（DDR X 以降）
//   - parse_titles_supernova: 曲ID → タイトル(複数可) → 次の曲ID。区切りはNUL1つ（SuperNOVA系）
//
// スキャナーは失敗しません。解釈できない並びは仮タイトルとして扱います。
package titles

import (
	"fmt"
	"strings"
)

// パーサー名
const (
	ParserForward   = "parse_titles"
	ParserReverse   = "parse_titles_reverse"
	ParserSupernova = "parse_titles_supernova"
)

// Scanner はタイトル表の [start, end) を走査して対応表を作成します
type Scanner interface {
	Name() string
	Scan(data []byte, start, end int) Table
}

// Option はスキャナーの設定オプション
type Option func(*options)

type options struct {
	encoding Encoding
}

// WithEncoding はUTF-8として読めないタイトルの文字コードを指定します
func WithEncoding(e Encoding) Option {
	return func(o *options) {
		o.encoding = e
	}
}

// Names は利用できるパーサー名の一覧を返します
func Names() []string {
	return []string{ParserForward, ParserReverse, ParserSupernova}
}

// IsKnown はパーサー名が利用できるか判定します
func IsKnown(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// New はパーサー名に対応するスキャナーを作成します
// 空文字列は parse_titles として扱います
func New(name string, opts ...Option) (Scanner, error) {
	o := options{encoding: EncodingLatin1}
	for _, opt := range opts {
		opt(&o)
	}

	switch name {
	case "", ParserForward:
		return &Forward{}, nil
	case ParserReverse:
		return &Reverse{Encoding: o.encoding}, nil
	case ParserSupernova:
		return &Supernova{Encoding: o.encoding}, nil
	}
	return nil, fmt.Errorf("%w: %q (%s のいずれかを指定してください)", ErrUnknownParser, name, strings.Join(Names(), ", "))
}
