// Package block はスキーマに従って固定長レコードを読み込みます
package block

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/shiroemons/go-songpack/internal/songpack/binread"
	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/schema"
)

// Block は1レコード分のフィールド値です。フィールド定義の順序を保持します
// 値は string、int、[]byte のいずれかです
type Block struct {
	values *orderedmap.OrderedMap
}

// New は空のBlockを作成します
func New() *Block {
	return &Block{values: orderedmap.New()}
}

// Set はフィールド値を設定します
func (b *Block) Set(name string, value any) {
	b.values.Set(name, value)
}

// Get はフィールド値を返します
func (b *Block) Get(name string) (any, bool) {
	return b.values.Get(name)
}

// Int は整数フィールドの値を返します
func (b *Block) Int(name string) (int, bool) {
	v, ok := b.values.Get(name)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Bytes はバイト列フィールドの値を返します
func (b *Block) Bytes(name string) ([]byte, bool) {
	v, ok := b.values.Get(name)
	if !ok {
		return nil, false
	}
	raw, ok := v.([]byte)
	return raw, ok
}

// String は文字列フィールドの値を返します
func (b *Block) String(name string) (string, bool) {
	v, ok := b.values.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Keys はフィールド名を読み込んだ順に返します
func (b *Block) Keys() []string {
	return append([]string(nil), b.values.Keys()...)
}

// Len はフィールド数を返します
func (b *Block) Len() int {
	return len(b.values.Keys())
}

// MusicID は正規化（前後の空白を除去して小文字化）した曲IDを返します
func (b *Block) MusicID() string {
	id, _ := b.String(schema.MusicIDField)
	return strings.ToLower(strings.TrimSpace(id))
}

// MarshalJSON はフィールド順のJSONに変換します。バイト列は16進文字列になります
func (b *Block) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for _, k := range b.values.Keys() {
		v, _ := b.values.Get(k)
		if raw, ok := v.([]byte); ok {
			v = hex.EncodeToString(raw)
		}
		om.Set(k, v)
	}
	return om.MarshalJSON()
}

// Read は1レコード分のウィンドウをフィールド定義に従って読み込みます
//
// 連続配置のフィールドは0から始まる位置を順に進め、明示オフセットのフィールドは
// その位置から読みます（連続配置の位置は進めません）。オフセットが空のフィールドは読み飛ばします。
func Read(window []byte, fields []schema.FieldSpec) (*Block, error) {
	b := New()
	pos := 0

	for _, f := range fields {
		if f.Blank {
			continue
		}

		start := pos
		if f.Explicit {
			start = f.Offset
		} else {
			pos += f.Size
		}

		end := start + f.Size
		if start < 0 || end > len(window) {
			got := 0
			if start >= 0 && start < len(window) {
				got = len(window) - start
			}
			return nil, songerrors.NewFieldError(songerrors.ErrTruncatedRecord, f.Name, f.Size, got)
		}

		v, err := decode(window[start:end], f.Type)
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", f.Name, err)
		}
		b.Set(f.Name, v)
	}

	return b, nil
}

func decode(chunk []byte, typ schema.FieldType) (any, error) {
	switch typ {
	case schema.TypeString:
		return binread.ReadString(chunk), nil
	case schema.TypeU8:
		v, err := binread.ReadU8(chunk)
		return int(v), err
	case schema.TypeU16LE:
		v, err := binread.ReadU16LE(chunk)
		return int(v), err
	case schema.TypeU32BE:
		v, err := binread.ReadU32BE(chunk)
		return int(v), err
	}
	// bytes と未知の型は生のバイト列
	raw := make([]byte, len(chunk))
	copy(raw, chunk)
	return raw, nil
}
