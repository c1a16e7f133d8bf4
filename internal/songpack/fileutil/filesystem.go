package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-songpack/internal/songpack/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry
	}
	return result, nil
}

// Getwd は現在の作業ディレクトリを取得します
func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Executable は実行ファイルのパスを取得します
func (fs *OSFileSystem) Executable() (string, error) {
	return os.Executable()
}

// SourceFinder はスキーマに名前がある入力ファイルを検索します
type SourceFinder struct {
	fs interfaces.FileSystem
}

// NewSourceFinder は新しいSourceFinderを作成します
func NewSourceFinder(fs interfaces.FileSystem) *SourceFinder {
	return &SourceFinder{fs: fs}
}

// Find はカレントディレクトリ、次に実行ファイルのディレクトリから
// names のいずれかと同じ名前のファイルを検索します
// 候補はちょうど1つである必要があります
func (f *SourceFinder) Find(names []string) (string, error) {
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
	}

	found, err := f.findInDir(currentDir, names)
	if err != nil {
		return "", err
	}

	// カレントディレクトリで見つかった場合は他のディレクトリは検索しない
	if len(found) == 0 {
		execPath, err := f.fs.Executable()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrGetExecutablePath, err)
		}

		execDir := filepath.Dir(execPath)
		if execDir != currentDir {
			found, err = f.findInDir(execDir, names)
			if err != nil {
				return "", err
			}
		}
	}

	switch len(found) {
	case 0:
		return "", ErrSourceNotFound
	case 1:
		return found[0], nil
	}
	return "", f.createMultipleFilesError(found)
}

// findInDir は指定されたディレクトリ内で names に一致するファイルを検索します
func (f *SourceFinder) findInDir(dir string, names []string) ([]string, error) {
	files, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var found []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if wanted[file.Name()] {
			found = append(found, filepath.Join(dir, file.Name()))
		}
	}
	return found, nil
}

// createMultipleFilesError は複数の候補が見つかった場合のエラーを生成します
func (f *SourceFinder) createMultipleFilesError(paths []string) error {
	fileNames := make([]string, len(paths))
	for i, path := range paths {
		fileNames[i] = filepath.Base(path)
	}
	return fmt.Errorf("%w: %s", ErrMultipleSources, strings.Join(fileNames, ", "))
}
