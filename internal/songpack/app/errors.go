package app

import "errors"

var (
	// ErrLoadSchema はスキーマ文書の読み込みに失敗した場合のエラー
	ErrLoadSchema = errors.New("スキーマ文書の読み込みに失敗しました")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrDecode はレコードのデコードに失敗した場合のエラー
	ErrDecode = errors.New("レコードのデコードに失敗しました")

	// ErrAssemble は出力レコードの作成に失敗した場合のエラー
	ErrAssemble = errors.New("出力レコードの作成に失敗しました")

	// ErrExport はパッケージの書き出しに失敗した場合のエラー
	ErrExport = errors.New("パッケージの書き出しに失敗しました")

	// ErrPublish はパッケージのアップロードに失敗した場合のエラー
	ErrPublish = errors.New("パッケージのアップロードに失敗しました")

	// ErrTemplate は雛形スキーマの作成に失敗した場合のエラー
	ErrTemplate = errors.New("雛形スキーマの作成に失敗しました")
)
