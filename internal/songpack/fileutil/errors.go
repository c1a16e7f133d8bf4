package fileutil

import "errors"

var (
	// ErrGetCurrentDirectory はカレントディレクトリを取得できない場合のエラー
	ErrGetCurrentDirectory = errors.New("カレントディレクトリを取得できませんでした")

	// ErrGetExecutablePath は実行ファイルのパスを取得できない場合のエラー
	ErrGetExecutablePath = errors.New("実行ファイルのパスを取得できませんでした")

	// ErrReadDirectory はディレクトリ内のファイル一覧を取得できない場合のエラー
	ErrReadDirectory = errors.New("ディレクトリ内のファイル一覧を取得できませんでした")

	// ErrMultipleSources は入力ファイルの候補が複数見つかった場合のエラー
	ErrMultipleSources = errors.New("入力ファイルの候補が複数見つかりました。使用するファイルを引数で指定してください")

	// ErrSourceNotFound は入力ファイルの候補が見つからなかった場合のエラー
	ErrSourceNotFound = errors.New("スキーマが定義された入力ファイルが見つかりませんでした")
)
