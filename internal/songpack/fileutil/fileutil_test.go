package fileutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// toShiftJIS はUTF-8文字列をShift-JISに変換するヘルパー関数
func toShiftJIS(str string) ([]byte, error) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	if _, err := w.Write([]byte(str)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func TestFromShiftJIS(t *testing.T) {
	sjis, err := toShiftJIS("ダンスダンスレボリューション")
	if err != nil {
		t.Fatalf("toShiftJIS failed: %v", err)
	}

	got, err := FromShiftJIS(string(sjis))
	if err != nil {
		t.Fatalf("FromShiftJIS failed: %v", err)
	}
	if got != "ダンスダンスレボリューション" {
		t.Errorf("Expected ダンスダンスレボリューション, got %s", got)
	}
}

func TestPackageDir(t *testing.T) {
	tests := []struct {
		outDir   string
		game     string
		expected string
	}{
		{"out", "DDR X", filepath.Join("out", "DDR X_packages")},
		{"", "ddrsn", "ddrsn_packages"},
		{"/tmp", "ddr", filepath.Join("/tmp", "ddr_packages")},
	}

	for _, test := range tests {
		if got := PackageDir(test.outDir, test.game); got != test.expected {
			t.Errorf("PackageDir(%s, %s) = %s; want %s", test.outDir, test.game, got, test.expected)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SLUS_212.08", "SLUS_212"},
		{"/path/to/GAME.DAT", "GAME"},
		{"noext", "noext"},
	}

	for _, test := range tests {
		if got := Stem(test.input); got != test.expected {
			t.Errorf("Stem(%s) = %s; want %s", test.input, got, test.expected)
		}
	}
}
