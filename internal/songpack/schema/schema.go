// Package schema は入力ファイルごとのレイアウト定義（スキーマ）を扱います
package schema

import (
	"fmt"

	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/fileutil"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

// DefaultAlbum はゲーム名が未設定の場合のアルバム名です
const DefaultAlbum = "DDR CS"

// MusicIDField は曲IDを保持するフィールド名です
const MusicIDField = "music_id"

// Schema は1つの入力ファイルのレイアウト定義です
type Schema struct {
	Game                       string            `json:"game,omitempty" yaml:"game,omitempty"`
	Offset                     int               `json:"offset" yaml:"offset"`
	EndOffset                  int               `json:"end_offset" yaml:"end_offset"`
	BlockSize                  int               `json:"block_size" yaml:"block_size"`
	TitlesOffsetStart          int               `json:"titles_offset_start" yaml:"titles_offset_start"`
	TitlesOffsetEnd            int               `json:"titles_offset_end" yaml:"titles_offset_end"`
	TitlesParser               string            `json:"titles_parser,omitempty" yaml:"titles_parser,omitempty"`
	TitlesEncoding             string            `json:"titles_encoding,omitempty" yaml:"titles_encoding,omitempty"`
	DifficultyScale            string            `json:"difficulty_scale,omitempty" yaml:"difficulty_scale,omitempty"`
	IncludeRadarSingleBeginner bool              `json:"include_radar_single_beginner,omitempty" yaml:"include_radar_single_beginner,omitempty"`
	ManualTitles               map[string]string `json:"manual_titles,omitempty" yaml:"manual_titles,omitempty"`
	Fields                     []FieldSpec       `json:"fields" yaml:"fields"`
}

// Validate はデコードを始める前にスキーマを検証し、最初に見つかったエラーを返します
func (s *Schema) Validate() error {
	if s.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size は1以上である必要があります (%d)", ErrInvalidSchema, s.BlockSize)
	}
	if s.Offset < 0 {
		return fmt.Errorf("%w: offset が負の値です (%d)", ErrInvalidSchema, s.Offset)
	}
	if s.EndOffset < s.Offset {
		return fmt.Errorf("%w: end_offset (0x%x) が offset (0x%x) より小さくなっています", ErrInvalidSchema, s.EndOffset, s.Offset)
	}
	if _, err := s.Scale(); err != nil {
		return err
	}
	if s.TitlesParser != "" && !titles.IsKnown(s.TitlesParser) {
		return fmt.Errorf("%w: %q", titles.ErrUnknownParser, s.TitlesParser)
	}
	if _, err := s.Encoding(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: フィールド名が空です", ErrInvalidField)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: フィールド '%s' が重複しています", ErrInvalidField, f.Name)
		}
		seen[f.Name] = true
		if f.Size <= 0 {
			return fmt.Errorf("%w: フィールド '%s' のサイズは1以上である必要があります (%d)", ErrInvalidField, f.Name, f.Size)
		}
		if f.Explicit && f.Offset < 0 {
			return fmt.Errorf("%w: フィールド '%s' のオフセットが負の値です (%d)", ErrInvalidField, f.Name, f.Offset)
		}
	}
	if !seen[MusicIDField] {
		return fmt.Errorf("%w: '%s' フィールドがありません", ErrInvalidSchema, MusicIDField)
	}

	return nil
}

// Warnings はデコードは続けられるが利用者に知らせるべき問題を返します
func (s *Schema) Warnings() []error {
	var warnings []error
	if s.BlockSize > 0 && s.EndOffset >= s.Offset && (s.EndOffset-s.Offset)%s.BlockSize != 0 {
		warnings = append(warnings, fmt.Errorf("%w: 範囲 (0x%x–0x%x) が block_size 0x%x の倍数ではありません",
			songerrors.ErrNonExactBlockRange, s.Offset, s.EndOffset, s.BlockSize))
	}
	for _, f := range s.Fields {
		if !f.Type.Known() {
			warnings = append(warnings, fmt.Errorf("%w: '%s' (%s)", ErrUnknownFieldType, f.Name, f.Type))
		}
	}
	return warnings
}

// RecordCount は範囲に収まるレコード数を返します
func (s *Schema) RecordCount() int {
	if s.BlockSize <= 0 || s.EndOffset <= s.Offset {
		return 0
	}
	return (s.EndOffset - s.Offset) / s.BlockSize
}

// HasTitleRange はタイトル表の範囲が設定されているか判定します
func (s *Schema) HasTitleRange() bool {
	return s.TitlesOffsetStart >= 0 && s.TitlesOffsetEnd > s.TitlesOffsetStart
}

// Scale は難易度の表記を返します
func (s *Schema) Scale() (difficulty.Scale, error) {
	return difficulty.ParseScale(s.DifficultyScale)
}

// ParserName はタイトルパーサー名を返します
func (s *Schema) ParserName() string {
	if s.TitlesParser == "" {
		return titles.ParserForward
	}
	return s.TitlesParser
}

// Encoding はタイトルの代替文字コードを返します
func (s *Schema) Encoding() (titles.Encoding, error) {
	return titles.ParseEncoding(s.TitlesEncoding)
}

// Album は出力レコードのアルバム名を返します
func (s *Schema) Album() string {
	if s.Game == "" {
		return DefaultAlbum
	}
	return s.Game
}

// PackageName は出力ディレクトリに使う名前を返します
// ゲーム名が未設定の場合は入力ファイル名から拡張子を除いたものを使います
func (s *Schema) PackageName(basename string) string {
	if s.Game == "" {
		return fileutil.Stem(basename)
	}
	return s.Game
}

// Field は名前でフィールド定義を検索します
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
