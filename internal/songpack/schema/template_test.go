package schema

import (
	"testing"

	"github.com/shiroemons/go-songpack/internal/songpack/difficulty"
)

func TestKnownFields(t *testing.T) {
	defs := KnownFields()
	if len(defs) != 61 {
		t.Errorf("Expected 61 fields, got %d", len(defs))
	}
	if defs[0].Name != MusicIDField || defs[0].Size != 5 || defs[0].Type != TypeString {
		t.Errorf("Unexpected first field: %+v", defs[0])
	}

	seen := make(map[string]bool)
	for _, d := range defs {
		if seen[d.Name] {
			t.Errorf("Duplicate field %s", d.Name)
		}
		seen[d.Name] = true
	}
	for _, name := range []string{"voltage_single_beginner", "freeze_double_challenge", "double_beginner"} {
		if !seen[name] {
			t.Errorf("Expected %s in known fields", name)
		}
	}
	if seen["voltage_double_beginner"] {
		t.Error("Expected no radar field for double beginner")
	}
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name        string
		scale       difficulty.Scale
		wantLen     int
		wantField   string
		hiddenField string
	}{
		{
			name:        "10段階",
			scale:       difficulty.Scale10,
			wantLen:     51,
			wantField:   difficulty.SingleLegacyField,
			hiddenField: "single_light",
		},
		{
			name:        "20段階",
			scale:       difficulty.Scale20,
			wantLen:     59,
			wantField:   "double_challenge",
			hiddenField: difficulty.DoubleLegacyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Template("DDR TEST", tt.scale)
			if s.Game != "DDR TEST" || s.DifficultyScale != string(tt.scale) {
				t.Errorf("Unexpected header: %+v", s)
			}
			if len(s.Fields) != tt.wantLen {
				t.Errorf("Expected %d fields, got %d", tt.wantLen, len(s.Fields))
			}
			if _, ok := s.Field(tt.wantField); !ok {
				t.Errorf("Expected %s in template", tt.wantField)
			}
			if _, ok := s.Field(tt.hiddenField); ok {
				t.Errorf("Expected %s not in template", tt.hiddenField)
			}
			for _, f := range s.Fields {
				if !f.Blank {
					t.Errorf("Expected blank offset for %s", f.Name)
				}
			}
			if s.Fields[len(s.Fields)-1].Name != "freeze_single_beginner" {
				t.Errorf("Expected radar fields last, got %s", s.Fields[len(s.Fields)-1].Name)
			}
		})
	}
}
