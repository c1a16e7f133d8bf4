// Package interfaces はsongpackコマンドで使用するインターフェースを定義します
package interfaces

import "context"

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
	Executable() (string, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// SourceFinder はスキーマが定義されたバイナリファイルを検索するインターフェースです
type SourceFinder interface {
	Find(names []string) (string, error)
}

// Publisher は出力済みのパッケージを外部ストレージへ送るインターフェースです
type Publisher interface {
	Publish(ctx context.Context, root string, files []string) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
	Warnf(format string, a ...any)
}
