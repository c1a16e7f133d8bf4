// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// PackagesSuffix はパッケージ出力ディレクトリ名の接尾辞です
const PackagesSuffix = "_packages"

// FromShiftJIS はShift-JISからUTF-8に変換します
func FromShiftJIS(str string) (string, error) {
	reader := strings.NewReader(str)
	transformer := japanese.ShiftJIS.NewDecoder()
	ret, err := io.ReadAll(transform.NewReader(reader, transformer))
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

// PackageDir はゲームごとのパッケージ出力ディレクトリを返します
func PackageDir(outDir, game string) string {
	if outDir == "" {
		outDir = "."
	}
	return filepath.Join(outDir, game+PackagesSuffix)
}

// Stem はファイル名から拡張子を除いた部分を返します
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
