package schema

import (
	"strings"

	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

// 出力レコードが参照するフィールド名
const (
	BPM1Field           = "bpm1"
	BPM2Field           = "bpm2"
	MemoryCardLinkField = "memcard_link_id"
)

// FieldDef は既知のフィールドの名前・サイズ・型です
type FieldDef struct {
	Name string
	Size int
	Type FieldType
}

// KnownFields は出力レコードの組み立てに使われるフィールドの一覧を返します
func KnownFields() []FieldDef {
	defs := []FieldDef{
		{MusicIDField, 5, TypeString},
		{BPM1Field, 2, TypeU16LE},
		{BPM2Field, 2, TypeU16LE},
		{MemoryCardLinkField, 2, TypeU16LE},
		{difficulty.SingleLegacyField, 4, TypeBytes},
		{difficulty.DoubleLegacyField, 4, TypeBytes},
	}
	for _, mode := range difficulty.Modes {
		for _, level := range difficulty.LevelNames {
			defs = append(defs, FieldDef{mode + "_" + level, 1, TypeU8})
		}
	}
	for _, metric := range difficulty.Metrics {
		for _, mode := range difficulty.Modes {
			for _, level := range difficulty.LevelNames[1:] {
				defs = append(defs, FieldDef{difficulty.RadarKey(metric, mode, level), 2, TypeU16LE})
			}
		}
		defs = append(defs, FieldDef{difficulty.RadarKey(metric, "single", "beginner"), 2, TypeU16LE})
	}
	return defs
}

// visibleFor はフィールドが難易度の表記で使われるか判定します
func visibleFor(name string, scale difficulty.Scale) bool {
	legacy := name == difficulty.SingleLegacyField || name == difficulty.DoubleLegacyField
	perLevel := !legacy && (strings.HasPrefix(name, "single_") || strings.HasPrefix(name, "double_"))
	switch {
	case legacy:
		return scale == difficulty.Scale10
	case perLevel:
		return scale == difficulty.Scale20
	}
	return true
}

// Template はオフセットが空の雛形スキーマを作成します
func Template(game string, scale difficulty.Scale) *Schema {
	s := &Schema{
		Game:            game,
		TitlesParser:    titles.ParserForward,
		DifficultyScale: string(scale),
	}
	for _, def := range KnownFields() {
		if !visibleFor(def.Name, scale) {
			continue
		}
		s.Fields = append(s.Fields, FieldSpec{
			Name:  def.Name,
			Blank: true,
			Size:  def.Size,
			Type:  def.Type,
		})
	}
	return s
}
