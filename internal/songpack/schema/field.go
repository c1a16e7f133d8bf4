package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// FieldType はフィールドの型名です
type FieldType string

// フィールド型
const (
	TypeString FieldType = "string"
	TypeU8     FieldType = "u8"
	TypeU16LE  FieldType = "u16_le"
	TypeU32BE  FieldType = "u32_be"
	TypeBytes  FieldType = "bytes"
)

// Known は型名が既知か判定します。未知の型は生のバイト列として読みます
func (t FieldType) Known() bool {
	switch t {
	case TypeString, TypeU8, TypeU16LE, TypeU32BE, TypeBytes:
		return true
	}
	return false
}

// FieldSpec はレコード内の1フィールドの定義です
//
// 文書上は ["name", size, "type"]（連続配置）または
// ["name", offset, size, "type"]（明示オフセット）の配列で表します。
// 明示オフセットは整数、10進文字列、0x付き16進文字列のいずれかです。
type FieldSpec struct {
	Name string
	// Offset はレコード先頭からの位置。Explicit が false の場合は使いません
	Offset   int
	Explicit bool
	// Blank はオフセットが空文字列のフィールド（この版には存在しない）
	Blank bool
	Size  int
	Type  FieldType
}

// Sequential は連続配置のフィールドを作成します
func Sequential(name string, size int, typ FieldType) FieldSpec {
	return FieldSpec{Name: name, Size: size, Type: typ}
}

// At は明示オフセットのフィールドを作成します
func At(name string, offset, size int, typ FieldType) FieldSpec {
	return FieldSpec{Name: name, Offset: offset, Explicit: true, Size: size, Type: typ}
}

// UnmarshalJSON は配列形式のフィールド定義を読み込みます
func (f *FieldSpec) UnmarshalJSON(data []byte) error {
	var items []any
	if err := sonic.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	return f.fromItems(items)
}

// UnmarshalYAML は配列形式のフィールド定義を読み込みます
func (f *FieldSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: 配列ではありません (%d行目)", ErrInvalidField, value.Line)
	}
	var items []any
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	return f.fromItems(items)
}

// MarshalJSON は配列形式で書き出します
func (f FieldSpec) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(f.items())
}

// MarshalYAML は配列形式で書き出します
func (f FieldSpec) MarshalYAML() (any, error) {
	node := &yaml.Node{}
	if err := node.Encode(f.items()); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

func (f FieldSpec) items() []any {
	switch {
	case f.Blank:
		return []any{f.Name, "", f.Size, string(f.Type)}
	case f.Explicit:
		return []any{f.Name, f.Offset, f.Size, string(f.Type)}
	}
	return []any{f.Name, f.Size, string(f.Type)}
}

func (f *FieldSpec) fromItems(items []any) error {
	var sizeItem, typeItem any
	*f = FieldSpec{}

	switch len(items) {
	case 3:
		sizeItem, typeItem = items[1], items[2]
	case 4:
		sizeItem, typeItem = items[2], items[3]
		offset, blank, err := toInt(items[1])
		if err != nil {
			return fmt.Errorf("%w: オフセット %v: %w", ErrInvalidField, items[1], err)
		}
		f.Offset, f.Explicit, f.Blank = offset, !blank, blank
	default:
		return fmt.Errorf("%w: 要素数は3または4である必要があります (%d)", ErrInvalidField, len(items))
	}

	name, ok := items[0].(string)
	if !ok {
		return fmt.Errorf("%w: フィールド名が文字列ではありません: %v", ErrInvalidField, items[0])
	}
	f.Name = name

	size, blank, err := toInt(sizeItem)
	if err != nil || blank {
		return fmt.Errorf("%w: '%s' のサイズ %v", ErrInvalidField, name, sizeItem)
	}
	f.Size = size

	typ, ok := typeItem.(string)
	if !ok {
		return fmt.Errorf("%w: '%s' の型が文字列ではありません: %v", ErrInvalidField, name, typeItem)
	}
	f.Type = FieldType(typ)

	return nil
}

// toInt は数値または数値文字列を整数に変換します。空文字列の場合は blank=true を返します
func toInt(v any) (n int, blank bool, err error) {
	switch x := v.(type) {
	case int:
		return x, false, nil
	case int64:
		return int(x), false, nil
	case uint64:
		return int(x), false, nil
	case float64:
		if x != math.Trunc(x) {
			return 0, false, fmt.Errorf("整数ではありません: %v", x)
		}
		return int(x), false, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true, nil
		}
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			i, err := strconv.ParseInt(s[2:], 16, 64)
			return int(i), false, err
		}
		i, err := strconv.Atoi(s)
		return i, false, err
	}
	return 0, false, fmt.Errorf("数値ではありません: %v", v)
}
