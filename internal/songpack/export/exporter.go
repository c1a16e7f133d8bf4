// Package export は出力レコードをパッケージとして書き出し、外部ストレージへ送ります
package export

import (
	"fmt"
	"path/filepath"

	"github.com/shiroemons/go-songpack/internal/songpack/fileutil"
	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
	"github.com/shiroemons/go-songpack/internal/songpack/models"
)

// SongsFile は全レコードをまとめたファイルの名前（拡張子なし）です
const SongsFile = "songs"

// PackageFile は曲ごとのファイルの名前（拡張子なし）です
const PackageFile = "package"

// Exporter はパッケージを書き出します
type Exporter struct {
	fs     interfaces.FileSystem
	format Format
	dryRun bool
}

// Option はExporterの設定オプション
type Option func(*Exporter)

// WithFormat は出力形式を指定します
func WithFormat(f Format) Option {
	return func(e *Exporter) {
		e.format = f
	}
}

// WithDryRun は書き込まずに出力先だけを返すモードを指定します
func WithDryRun(dryRun bool) Option {
	return func(e *Exporter) {
		e.dryRun = dryRun
	}
}

// NewExporter は新しいExporterを作成します
func NewExporter(fs interfaces.FileSystem, opts ...Option) *Exporter {
	e := &Exporter{fs: fs, format: FormatJSON}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result は書き出した結果です
type Result struct {
	// Root はパッケージのルートディレクトリ（<outDir>/<game>_packages）
	Root string
	// Files は書き出したファイル（ドライランでは書き出す予定のファイル）
	Files []string
}

// Export は全レコードのファイルと曲ごとのファイルを書き出します
//
//	<outDir>/<game>_packages/songs.<ext>
//	<outDir>/<game>_packages/<music_id>/package.<ext>
func (e *Exporter) Export(songs []models.Song, game, outDir string) (*Result, error) {
	root := fileutil.PackageDir(outDir, game)
	res := &Result{Root: root}
	ext := "." + e.format.Ext()

	if songs == nil {
		songs = []models.Song{}
	}

	songsPath := filepath.Join(root, SongsFile+ext)
	if err := e.write(root, songsPath, songs); err != nil {
		return res, err
	}
	res.Files = append(res.Files, songsPath)

	for _, song := range songs {
		dir := filepath.Join(root, song.MusicID)
		path := filepath.Join(dir, PackageFile+ext)
		if err := e.write(dir, path, song); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}

func (e *Exporter) write(dir, path string, v any) error {
	data, err := Encode(v, e.format)
	if err != nil {
		return err
	}
	if e.dryRun {
		return nil
	}
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreateDirectory, dir, err)
	}
	if err := e.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFile, path, err)
	}
	return nil
}
