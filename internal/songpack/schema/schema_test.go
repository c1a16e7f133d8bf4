package schema

import (
	"errors"
	"testing"

	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
	songerrors "github.com/shiroemons/go-songpack/internal/songpack/errors"
	"github.com/shiroemons/go-songpack/internal/songpack/titles"
)

func validSchema() *Schema {
	return &Schema{
		Game:      "DDR TEST",
		Offset:    0x100,
		EndOffset: 0x100 + 3*16,
		BlockSize: 16,
		Fields: []FieldSpec{
			Sequential("music_id", 5, TypeString),
			At("bpm1", 6, 2, TypeU16LE),
		},
	}
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Schema)
		wantErr error
	}{
		{name: "正常", modify: func(s *Schema) {}},
		{name: "block_sizeが0", modify: func(s *Schema) { s.BlockSize = 0 }, wantErr: ErrInvalidSchema},
		{name: "範囲が逆", modify: func(s *Schema) { s.EndOffset = s.Offset - 1 }, wantErr: ErrInvalidSchema},
		{name: "負のoffset", modify: func(s *Schema) { s.Offset = -1 }, wantErr: ErrInvalidSchema},
		{name: "未知の難易度表記", modify: func(s *Schema) { s.DifficultyScale = "1_15" }, wantErr: songerrors.ErrUnknownScale},
		{name: "未知のパーサー", modify: func(s *Schema) { s.TitlesParser = "parse_titles_sequential" }, wantErr: titles.ErrUnknownParser},
		{name: "未知の文字コード", modify: func(s *Schema) { s.TitlesEncoding = "utf-16" }, wantErr: titles.ErrUnknownEncoding},
		{
			name:    "フィールド名の重複",
			modify:  func(s *Schema) { s.Fields = append(s.Fields, Sequential("bpm1", 2, TypeU16LE)) },
			wantErr: ErrInvalidField,
		},
		{
			name:    "サイズが0",
			modify:  func(s *Schema) { s.Fields = append(s.Fields, Sequential("bpm2", 0, TypeU16LE)) },
			wantErr: ErrInvalidField,
		},
		{
			name:    "music_idがない",
			modify:  func(s *Schema) { s.Fields = s.Fields[1:] },
			wantErr: ErrInvalidSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSchema()
			tt.modify(s)
			err := s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSchema_Warnings(t *testing.T) {
	s := validSchema()
	if w := s.Warnings(); len(w) != 0 {
		t.Errorf("Expected no warnings, got %v", w)
	}

	s.EndOffset += 5
	s.Fields = append(s.Fields, Sequential("odd", 3, FieldType("u24")))
	w := s.Warnings()
	if len(w) != 2 {
		t.Fatalf("Expected 2 warnings, got %v", w)
	}
	if !errors.Is(w[0], songerrors.ErrNonExactBlockRange) {
		t.Errorf("Expected ErrNonExactBlockRange, got %v", w[0])
	}
	if !errors.Is(w[1], ErrUnknownFieldType) {
		t.Errorf("Expected ErrUnknownFieldType, got %v", w[1])
	}
}

func TestSchema_RecordCount(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		size  int
		want  int
	}{
		{name: "ちょうど", start: 0, end: 48, size: 16, want: 3},
		{name: "端数は切り捨て", start: 0, end: 50, size: 16, want: 3},
		{name: "空の範囲", start: 16, end: 16, size: 16, want: 0},
		{name: "block_sizeが0", start: 0, end: 16, size: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schema{Offset: tt.start, EndOffset: tt.end, BlockSize: tt.size}
			if got := s.RecordCount(); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSchema_HasTitleRange(t *testing.T) {
	s := &Schema{}
	if s.HasTitleRange() {
		t.Error("Expected no title range for zero values")
	}
	s.TitlesOffsetStart, s.TitlesOffsetEnd = 0x10, 0x10
	if s.HasTitleRange() {
		t.Error("Expected no title range for empty span")
	}
	s.TitlesOffsetEnd = 0x20
	if !s.HasTitleRange() {
		t.Error("Expected title range")
	}
}

func TestSchema_Defaults(t *testing.T) {
	s := &Schema{}
	if s.ParserName() != titles.ParserForward {
		t.Errorf("Expected %s, got %s", titles.ParserForward, s.ParserName())
	}
	scale, err := s.Scale()
	if err != nil || scale != difficulty.Scale10 {
		t.Errorf("Expected %s, got %s (%v)", difficulty.Scale10, scale, err)
	}
	enc, err := s.Encoding()
	if err != nil || enc != titles.EncodingLatin1 {
		t.Errorf("Expected %s, got %s (%v)", titles.EncodingLatin1, enc, err)
	}
	if s.Album() != DefaultAlbum {
		t.Errorf("Expected %s, got %s", DefaultAlbum, s.Album())
	}
	if got := s.PackageName("SLPM_624.27"); got != "SLPM_624" {
		t.Errorf("Expected SLPM_624, got %s", got)
	}

	s.Game = "DDR EXTREME"
	if s.Album() != "DDR EXTREME" || s.PackageName("SLPM_624.27") != "DDR EXTREME" {
		t.Errorf("Expected game name to be used, got %s / %s", s.Album(), s.PackageName("SLPM_624.27"))
	}
}

func TestSchema_Field(t *testing.T) {
	s := validSchema()
	f, ok := s.Field("bpm1")
	if !ok || f.Offset != 6 {
		t.Errorf("Unexpected field: %+v, %v", f, ok)
	}
	if _, ok := s.Field("missing"); ok {
		t.Error("Expected missing field not to be found")
	}
}
