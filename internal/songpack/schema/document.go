package schema

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Document は入力ファイル名からスキーマへの対応です。文書上の順序を保持します
type Document struct {
	names   []string
	schemas map[string]*Schema
}

// NewDocument は空のDocumentを作成します
func NewDocument() *Document {
	return &Document{schemas: make(map[string]*Schema)}
}

// Set はスキーマを追加または置き換えます
func (d *Document) Set(name string, s *Schema) {
	if _, ok := d.schemas[name]; !ok {
		d.names = append(d.names, name)
	}
	d.schemas[name] = s
}

// Names は文書上の順序でファイル名を返します
func (d *Document) Names() []string {
	return append([]string(nil), d.names...)
}

// Len は登録されたスキーマの数を返します
func (d *Document) Len() int {
	return len(d.names)
}

// Lookup はファイル名に対応するスキーマを返します
func (d *Document) Lookup(basename string) (*Schema, error) {
	if s, ok := d.schemas[basename]; ok {
		return s, nil
	}
	if len(d.names) == 0 {
		return nil, fmt.Errorf("%w: '%s' (スキーマが1つもありません)", ErrNoSchema, basename)
	}
	return nil, fmt.Errorf("%w: '%s'\n既存のスキーマ:\n- %s", ErrNoSchema, basename, strings.Join(d.names, "\n- "))
}

// MarshalJSON は文書上の順序でJSONに変換します
func (d *Document) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for _, name := range d.names {
		om.Set(name, d.schemas[name])
	}
	return om.MarshalJSON()
}

// MarshalYAML は文書上の順序でYAMLのマッピングに変換します
func (d *Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range d.names {
		value := &yaml.Node{}
		if err := value.Encode(d.schemas[name]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			value,
		)
	}
	return root, nil
}

// ParseJSON はJSON形式のスキーマ文書を解析します
func ParseJSON(data []byte) (*Document, error) {
	// キーの順序だけを先に読み取る
	om := orderedmap.New()
	if err := om.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}

	var schemas map[string]*Schema
	if err := sonic.Unmarshal(data, &schemas); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}

	doc := NewDocument()
	for _, name := range om.Keys() {
		if s := schemas[name]; s != nil {
			doc.Set(name, s)
		}
	}
	return doc, nil
}

// ParseYAML はYAML形式のスキーマ文書を解析します
func ParseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}

	doc := NewDocument()
	if len(root.Content) == 0 {
		return doc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: 最上位がマッピングではありません", ErrParseDocument)
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		var s Schema
		if err := value.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: '%s': %w", ErrParseDocument, key.Value, err)
		}
		doc.Set(key.Value, &s)
	}
	return doc, nil
}
